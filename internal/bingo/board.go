// Package bingo plays squid bingo: square boards of distinct numbers that are
// marked by a sequence of draws until a full row or column is marked.
package bingo

import (
	"fmt"
	"strings"

	"github.com/s-pike/advent2021/internal/puzzle"
)

// DefaultSize is the board dimension used by the puzzle input.
const DefaultSize = 5

type cell struct {
	row, col int
}

// Board is a square grid of distinct values with a mark per cell.
type Board struct {
	size      int
	values    [][]int
	marked    [][]bool
	positions map[int]cell
	won       bool
	score     int
}

// NewBoard builds an unmarked board from grid. The grid must be square and hold
// distinct values.
func NewBoard(grid [][]int) (*Board, error) {
	size := len(grid)
	if size == 0 {
		return nil, puzzle.Invalid("", "board has no rows")
	}

	b := &Board{
		size:      size,
		values:    make([][]int, size),
		marked:    make([][]bool, size),
		positions: make(map[int]cell, size*size),
	}

	for r, row := range grid {
		if len(row) != size {
			return nil, puzzle.Invalid(formatRow(row), "row %d has %d values, board needs %d", r, len(row), size)
		}
		b.values[r] = make([]int, size)
		b.marked[r] = make([]bool, size)
		for c, v := range row {
			if prev, exists := b.positions[v]; exists {
				return nil, puzzle.Invalid(formatRow(row), "value %d at (%d,%d) already at (%d,%d)", v, r, c, prev.row, prev.col)
			}
			b.positions[v] = cell{row: r, col: c}
			b.values[r][c] = v
		}
	}

	return b, nil
}

// Mark marks value if it is on the board and reports whether the board has won.
// A board that has already won is not changed.
func (b *Board) Mark(value int) bool {
	if b.won {
		return true
	}

	pos, ok := b.positions[value]
	if !ok {
		return b.won
	}

	b.marked[pos.row][pos.col] = true
	if b.rowComplete(pos.row) || b.colComplete(pos.col) {
		b.won = true
		b.score = b.UnmarkedSum() * value
	}

	return b.won
}

func (b *Board) rowComplete(row int) bool {
	for c := 0; c < b.size; c++ {
		if !b.marked[row][c] {
			return false
		}
	}
	return true
}

func (b *Board) colComplete(col int) bool {
	for r := 0; r < b.size; r++ {
		if !b.marked[r][col] {
			return false
		}
	}
	return true
}

// UnmarkedSum adds up the values of every cell not yet marked.
func (b *Board) UnmarkedSum() int {
	sum := 0
	for r, row := range b.values {
		for c, v := range row {
			if !b.marked[r][c] {
				sum += v
			}
		}
	}
	return sum
}

// Won reports whether a full row or column has been marked.
func (b *Board) Won() bool {
	return b.won
}

// Score is the unmarked sum times the winning draw, or 0 before the board wins.
func (b *Board) Score() int {
	return b.score
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// Value returns the value at row, col.
func (b *Board) Value(row, col int) int {
	return b.values[row][col]
}

// Marked reports whether the cell at row, col is marked.
func (b *Board) Marked(row, col int) bool {
	return b.marked[row][col]
}

// Contains reports whether value is on the board.
func (b *Board) Contains(value int) bool {
	_, ok := b.positions[value]
	return ok
}

// String renders the board one row per line with marked values in brackets.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.values {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b.marked[r][c] {
				fmt.Fprintf(&sb, "[%2d]", v)
			} else {
				fmt.Fprintf(&sb, " %2d ", v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatRow(row []int) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
