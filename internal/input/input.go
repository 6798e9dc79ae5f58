// Package input locates and splits puzzle input files.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is where puzzle inputs live relative to the working directory.
const DefaultDir = "data"

// FileName returns the conventional input file name for a day and puzzle part,
// e.g. day-04_input-1.txt.
func FileName(day, part int) string {
	return fmt.Sprintf("day-%02d_input-%d.txt", day, part)
}

// Path joins dir and FileName.
func Path(dir string, day, part int) string {
	return filepath.Join(dir, FileName(day, part))
}

// ReadFile reads a whole input file. Empty files are rejected.
func ReadFile(path string) (string, error) {
	path = strings.TrimSpace(path)

	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	if len(bytes) == 0 {
		return "", fmt.Errorf("input file %s is empty", path)
	}

	return string(bytes), nil
}

// Lines splits text into lines, strips each one and drops trailing blank lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimSpace(l))
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Blocks groups consecutive non-blank lines. Runs of blank lines separate groups.
func Blocks(lines []string) [][]string {
	var blocks [][]string
	var current []string

	for _, l := range lines {
		if l == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, l)
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}
