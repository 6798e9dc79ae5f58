package solver

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/config"
)

// Pool builds solvers from configuration
type Pool struct {
	logger *zerolog.Logger
}

func NewPool(logger *zerolog.Logger) *Pool {
	return &Pool{
		logger: logger,
	}
}

func (p *Pool) BuildFromConfig(cfg *config.PuzzlesConfig) ([]Solver, error) {
	if cfg == nil {
		return nil, fmt.Errorf("puzzles config is nil")
	}

	var solvers []Solver

	for _, solverCfg := range cfg.Puzzles.Solvers {
		if !solverCfg.Enabled {
			p.logger.Info().
				Str("solver", solverCfg.Name).
				Msg("solver disabled in config, skipping")
			continue
		}

		s, err := p.build(solverCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create solver %s: %w", solverCfg.Name, err)
		}

		solvers = append(solvers, s)

		p.logger.Info().
			Str("solver", solverCfg.Name).
			Str("kind", solverCfg.Kind).
			Int("day", solverCfg.Day).
			Int("part", solverCfg.Part).
			Msg("solver created successfully")
	}

	if len(solvers) == 0 {
		return nil, fmt.Errorf("no enabled solvers found in config")
	}

	p.logger.Info().
		Int("total_solvers", len(solvers)).
		Msg("solver pool built successfully")

	return solvers, nil
}

func (p *Pool) build(cfg config.SolverConfiguration) (Solver, error) {
	switch cfg.Kind {
	case config.KindBingo:
		return NewBingoSolver(cfg, p.logger)
	case config.KindVents:
		return NewVentSolver(cfg, p.logger)
	default:
		return nil, fmt.Errorf("unknown kind %q", cfg.Kind)
	}
}
