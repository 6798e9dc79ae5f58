package solver

import (
	"context"
	"errors"
)

// Solver computes the answer to one puzzle part from its raw input text.
type Solver interface {
	Name() string
	Day() int
	Part() int
	Description() string
	Solve(ctx context.Context, input string) (int, error)
}

var (
	ErrSolverNotFound = errors.New("solver not found")
	ErrNoWinner       = errors.New("no board wins")
)

// meta carries the identity shared by every solver.
type meta struct {
	name        string
	day         int
	part        int
	description string
}

func (m meta) Name() string        { return m.name }
func (m meta) Day() int            { return m.day }
func (m meta) Part() int           { return m.part }
func (m meta) Description() string { return m.description }
