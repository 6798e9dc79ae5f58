package bingo

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/s-pike/advent2021/internal/input"
	"github.com/s-pike/advent2021/internal/puzzle"
)

// Game is a parsed bingo subsystem: the draw order and the board grids.
type Game struct {
	Draws []int
	grids [][][]int
}

// Win describes the moment a board won.
type Win struct {
	Board int // index of the board in input order
	Round int // index of the winning draw in Draws
	Draw  int
	Score int
}

// ParseGame reads the draw line followed by blank-line separated boards.
func ParseGame(text string) (*Game, error) {
	blocks := input.Blocks(input.Lines(text))
	if len(blocks) == 0 {
		return nil, puzzle.Parse(text, "missing draw line")
	}

	header := blocks[0]
	if len(header) != 1 {
		return nil, puzzle.Parse(strings.Join(header, "\n"), "draw line must be followed by a blank line")
	}
	draws, err := parseInts(header[0], func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if err != nil {
		return nil, fmt.Errorf("draws: %w", err)
	}
	if len(draws) == 0 {
		return nil, puzzle.Parse(header[0], "no draws")
	}

	game := &Game{Draws: draws}
	for i, block := range blocks[1:] {
		grid := make([][]int, 0, len(block))
		for _, line := range block {
			row, err := parseInts(line, unicode.IsSpace)
			if err != nil {
				return nil, fmt.Errorf("board %d: %w", i, err)
			}
			grid = append(grid, row)
		}

		// Validate eagerly so a bad board is reported at parse time.
		board, err := NewBoard(grid)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", i, err)
		}
		if len(game.grids) > 0 && board.Size() != len(game.grids[0]) {
			return nil, fmt.Errorf("board %d: %w", i,
				puzzle.Invalid(strings.Join(block, "\n"), "board size %d differs from %d", board.Size(), len(game.grids[0])))
		}
		game.grids = append(game.grids, grid)
	}

	return game, nil
}

func parseInts(line string, sep func(rune) bool) ([]int, error) {
	fields := strings.FieldsFunc(line, sep)
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, puzzle.Parse(line, "%q is not an integer", f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// NumBoards returns how many boards the game holds.
func (g *Game) NumBoards() int {
	return len(g.grids)
}

// Boards builds fresh, unmarked boards for one play of the game.
func (g *Game) Boards() []*Board {
	boards := make([]*Board, 0, len(g.grids))
	for _, grid := range g.grids {
		// grids were validated by ParseGame
		b, _ := NewBoard(grid)
		boards = append(boards, b)
	}
	return boards
}

// FirstWinner plays the draws in order and returns the first board to win.
func (g *Game) FirstWinner() (Win, bool) {
	boards := g.Boards()
	for round, n := range g.Draws {
		for i, b := range boards {
			if b.Mark(n) {
				return Win{Board: i, Round: round, Draw: n, Score: b.Score()}, true
			}
		}
	}
	return Win{}, false
}

// LastWinner plays every draw and returns the last board to win. Boards that
// never win are ignored.
func (g *Game) LastWinner() (Win, bool) {
	boards := g.Boards()
	var last Win
	found := false

	for round, n := range g.Draws {
		for i, b := range boards {
			if b.Won() {
				continue
			}
			if b.Mark(n) {
				last = Win{Board: i, Round: round, Draw: n, Score: b.Score()}
				found = true
			}
		}
	}

	return last, found
}
