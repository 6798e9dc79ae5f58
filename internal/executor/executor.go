package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/models"
	"github.com/s-pike/advent2021/internal/solver"
)

//go:generate mockgen -destination=mocks/mock_executor.go -package=mocks . SolverRegistry,InputLoader
//go:generate mockgen -destination=mocks/mock_solver.go -package=mocks github.com/s-pike/advent2021/internal/solver Solver

// SolverRegistry resolves the solver for one puzzle part
type SolverRegistry interface {
	Get(day, part int) (solver.Solver, error)
}

// InputLoader resolves the puzzle text for a request
type InputLoader interface {
	Load(ctx context.Context, req models.SolveRequest) (string, error)
}

var ErrSolverNotFound = solver.ErrSolverNotFound

type Executor struct {
	solvers SolverRegistry
	loader  InputLoader
	logger  *zerolog.Logger
}

func NewExecutor(solvers SolverRegistry, loader InputLoader, logger *zerolog.Logger) *Executor {
	return &Executor{
		solvers: solvers,
		loader:  loader,
		logger:  logger,
	}
}

// Execute runs one request. The returned result is always populated; a
// non-nil error means its status is failed.
func (e *Executor) Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	id := req.RequestID
	e.logger.Info().Str("requestID", id).Int("day", req.Day).Int("part", req.Part).Msg("starting solve")

	result := models.SolveResult{
		ID:     id,
		Day:    req.Day,
		Part:   req.Part,
		Status: models.StatusFailed,
	}

	s, err := e.solvers.Get(req.Day, req.Part)
	if err != nil {
		e.logger.Error().Err(err).Str("requestID", id).Msg("Solver not found")
		if !errors.Is(err, ErrSolverNotFound) {
			err = fmt.Errorf("%w: %v", ErrSolverNotFound, err)
		}
		result.Error = err.Error()
		return result, err
	}
	result.Solver = s.Name()

	text, err := e.loader.Load(ctx, req)
	if err != nil {
		err = fmt.Errorf("load input: %w", err)
		e.logger.Error().Err(err).Str("requestID", id).Msg("Failed to load input")
		result.Error = err.Error()
		return result, err
	}

	start := time.Now()
	answer, err := s.Solve(ctx, text)
	result.Duration = time.Since(start)
	if err != nil {
		err = fmt.Errorf("%s: %w", s.Name(), err)
		e.logger.Error().Err(err).Str("requestID", id).Dur("duration", result.Duration).Msg("solve failed")
		result.Error = err.Error()
		return result, err
	}

	result.Answer = answer
	result.Status = models.StatusSolved

	e.logger.Info().
		Str("requestID", id).
		Str("solver", s.Name()).
		Int("answer", answer).
		Dur("duration", result.Duration).
		Msg("solve completed")

	return result, nil
}
