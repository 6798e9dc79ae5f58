package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/models"
)

// maxLineBytes bounds a manifest line; inline puzzle inputs can be large.
const maxLineBytes = 8 << 20

var ErrInvalidRecord = errors.New("invalid record")

type InputRecord struct {
	LineNumber int
	Request    models.SolveRequest
	Error      error
}

type Reader struct {
	r      io.Reader
	logger *zerolog.Logger
}

func NewReader(r io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		r:      r,
		logger: logger,
	}
}

// ReadAll streams one record per non-blank manifest line. The channel closes at
// EOF, on a read error or when ctx is cancelled.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			if err := json.Unmarshal(line, &record.Request); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
			} else if record.Request.Day < 1 || record.Request.Part < 1 {
				record.Error = fmt.Errorf("line %d: %w: day and part must be positive", lineNumber, ErrInvalidRecord)
			}

			if record.Error != nil {
				r.logger.Warn().Err(record.Error).Int("line", lineNumber).Msg("Skipping malformed record")
			}

			select {
			case out <- record:
			case <-ctx.Done():
				r.logger.Info().Int("line", lineNumber).Msg("Reader cancelled")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Int("line", lineNumber).Msg("Failed to read input")
			select {
			case out <- InputRecord{LineNumber: lineNumber + 1, Error: fmt.Errorf("read input: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}
