package input

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/models"
)

// ErrOutsideDir rejects an InputPath that does not resolve under the loader's
// directory.
var ErrOutsideDir = errors.New("input path is outside the input directory")

// FileLoader resolves the text of a SolveRequest: inline input first, then the
// request's InputPath, then the conventional data file under dir.
//
// InputPath arrives from stream and MCP clients, so it is only honoured when it
// resolves under dir. Relative paths are taken from the working directory.
// Symlinks under dir are trusted.
type FileLoader struct {
	dir    string
	logger *zerolog.Logger
}

func NewFileLoader(dir string, logger *zerolog.Logger) *FileLoader {
	if dir == "" {
		dir = DefaultDir
	}
	return &FileLoader{
		dir:    dir,
		logger: logger,
	}
}

func (l *FileLoader) Load(ctx context.Context, req models.SolveRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if req.Input != "" {
		return req.Input, nil
	}

	path := Path(l.dir, req.Day, 1) // both parts of a day share the first input file
	if req.InputPath != "" {
		resolved, err := l.within(req.InputPath)
		if err != nil {
			return "", err
		}
		path = resolved
	}

	l.logger.Debug().Str("file", path).Int("day", req.Day).Msg("Reading puzzle input")
	return ReadFile(path)
}

func (l *FileLoader) within(path string) (string, error) {
	dir, err := filepath.Abs(l.dir)
	if err != nil {
		return "", fmt.Errorf("resolve input dir %s: %w", l.dir, err)
	}
	abs, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf("resolve input path %s: %w", path, err)
	}

	rel, err := filepath.Rel(dir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideDir, path)
	}
	return abs, nil
}
