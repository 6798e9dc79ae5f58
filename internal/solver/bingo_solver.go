package solver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/bingo"
	"github.com/s-pike/advent2021/internal/config"
)

// BingoSolver scores the first or the last board to win.
type BingoSolver struct {
	meta
	strategy string
	logger   *zerolog.Logger
}

func NewBingoSolver(cfg config.SolverConfiguration, logger *zerolog.Logger) (*BingoSolver, error) {
	if cfg.Strategy != config.StrategyFirst && cfg.Strategy != config.StrategyLast {
		return nil, fmt.Errorf("unknown bingo strategy %q", cfg.Strategy)
	}

	return &BingoSolver{
		meta:     meta{name: cfg.Name, day: cfg.Day, part: cfg.Part, description: cfg.Description},
		strategy: cfg.Strategy,
		logger:   logger,
	}, nil
}

func (s *BingoSolver) Solve(ctx context.Context, input string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	game, err := bingo.ParseGame(input)
	if err != nil {
		return 0, err
	}

	var win bingo.Win
	var ok bool
	if s.strategy == config.StrategyLast {
		win, ok = game.LastWinner()
	} else {
		win, ok = game.FirstWinner()
	}
	if !ok {
		return 0, ErrNoWinner
	}

	s.logger.Debug().
		Str("solver", s.name).
		Int("boards", game.NumBoards()).
		Int("board", win.Board).
		Int("round", win.Round).
		Int("draw", win.Draw).
		Msg("bingo")

	return win.Score, nil
}
