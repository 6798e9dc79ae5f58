package bingo

import (
	"errors"
	"testing"

	"github.com/s-pike/advent2021/internal/puzzle"
)

// rowMajor returns a size x size grid holding 1..size*size in row-major order.
func rowMajor(size int) [][]int {
	grid := make([][]int, size)
	n := 1
	for r := range grid {
		grid[r] = make([]int, size)
		for c := range grid[r] {
			grid[r][c] = n
			n++
		}
	}
	return grid
}

func mustBoard(t *testing.T, grid [][]int) *Board {
	t.Helper()
	b, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	return b
}

func TestNewBoard_Invalid(t *testing.T) {
	tests := []struct {
		name string
		grid [][]int
	}{
		{"empty", nil},
		{"not square", [][]int{{1, 2, 3}, {4, 5, 6}}},
		{"ragged", [][]int{{1, 2}, {3}}},
		{"duplicate values", [][]int{{1, 2}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.grid)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, puzzle.ErrInvalidInput) {
				t.Errorf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestNewBoard_StartsUnmarked(t *testing.T) {
	b := mustBoard(t, rowMajor(DefaultSize))

	if b.Size() != 5 {
		t.Errorf("Size() = %d, want 5", b.Size())
	}
	if b.Won() || b.Score() != 0 {
		t.Errorf("new board: won=%v score=%d", b.Won(), b.Score())
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if b.Marked(r, c) {
				t.Fatalf("cell (%d,%d) marked on new board", r, c)
			}
		}
	}
	if b.Value(2, 3) != 14 {
		t.Errorf("Value(2,3) = %d, want 14", b.Value(2, 3))
	}
}

func TestMark_RowWin(t *testing.T) {
	b := mustBoard(t, rowMajor(DefaultSize))

	for _, n := range []int{1, 2, 3, 4} {
		if b.Mark(n) {
			t.Fatalf("unexpected win after %d", n)
		}
	}

	if !b.Mark(5) {
		t.Fatal("expected row 0 to win on 5")
	}

	// 325 - (1+2+3+4+5) = 310
	if b.UnmarkedSum() != 310 {
		t.Errorf("UnmarkedSum() = %d, want 310", b.UnmarkedSum())
	}
	if b.Score() != 1550 {
		t.Errorf("Score() = %d, want 1550", b.Score())
	}
}

func TestMark_ColumnWin(t *testing.T) {
	b := mustBoard(t, rowMajor(DefaultSize))

	var won bool
	for _, n := range []int{3, 8, 13, 18, 23} {
		won = b.Mark(n)
	}

	if !won {
		t.Fatal("expected column 2 to win")
	}
	if want := (325 - 65) * 23; b.Score() != want {
		t.Errorf("Score() = %d, want %d", b.Score(), want)
	}
}

func TestMark_AbsentValueIsNoop(t *testing.T) {
	b := mustBoard(t, rowMajor(DefaultSize))
	b.Mark(7)

	if b.Mark(99) {
		t.Error("absent value must not win")
	}
	if b.UnmarkedSum() != 325-7 {
		t.Errorf("absent value changed marks: UnmarkedSum() = %d", b.UnmarkedSum())
	}
	if b.Contains(99) {
		t.Error("Contains(99) = true")
	}
}

func TestMark_WonIsMonotonicAndScoreFixed(t *testing.T) {
	b := mustBoard(t, rowMajor(DefaultSize))
	for _, n := range []int{1, 2, 3, 4, 5} {
		b.Mark(n)
	}
	score := b.Score()

	for _, n := range []int{6, 11, 16, 21, 99, 25} {
		if !b.Mark(n) {
			t.Fatalf("won reverted after marking %d", n)
		}
		if b.Score() != score {
			t.Fatalf("score changed from %d to %d after marking %d", score, b.Score(), n)
		}
	}
	if b.Marked(1, 0) {
		t.Error("won board should not take further marks")
	}
}

func TestMark_RowAndColumnTogetherScoresOnce(t *testing.T) {
	b := mustBoard(t, rowMajor(3))

	// complete row 0 except (0,0) and column 0 except (0,0)
	for _, n := range []int{2, 3, 4, 7} {
		if b.Mark(n) {
			t.Fatalf("unexpected win on %d", n)
		}
	}

	if !b.Mark(1) {
		t.Fatal("expected win")
	}
	// unmarked: 5 6 8 9
	if b.Score() != 28 {
		t.Errorf("Score() = %d, want 28", b.Score())
	}
}

func TestMark_EveryValueEventuallyWins(t *testing.T) {
	grid := [][]int{
		{22, 13, 17, 11, 0},
		{8, 2, 23, 4, 24},
		{21, 9, 14, 16, 7},
		{6, 10, 3, 18, 5},
		{1, 12, 20, 15, 19},
	}
	b := mustBoard(t, grid)

	for _, row := range grid {
		for _, v := range row {
			b.Mark(v)
		}
	}

	if !b.Won() {
		t.Error("marking every value must win")
	}
}

func TestBoard_String(t *testing.T) {
	b := mustBoard(t, [][]int{{1, 2}, {3, 4}})
	b.Mark(2)

	want := "  1  [ 2]\n  3    4 \n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
