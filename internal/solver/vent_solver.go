package solver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/config"
	"github.com/s-pike/advent2021/internal/input"
	"github.com/s-pike/advent2021/internal/vents"
)

// VentSolver counts dangerous points where vent lines overlap.
type VentSolver struct {
	meta
	allowed   vents.OrientationSet
	threshold int
	logger    *zerolog.Logger
}

func NewVentSolver(cfg config.SolverConfiguration, logger *zerolog.Logger) (*VentSolver, error) {
	allowed, err := vents.ParseOrientationSet(cfg.Orientations)
	if err != nil {
		return nil, fmt.Errorf("orientations: %w", err)
	}

	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = vents.DefaultThreshold
	}

	return &VentSolver{
		meta:      meta{name: cfg.Name, day: cfg.Day, part: cfg.Part, description: cfg.Description},
		allowed:   allowed,
		threshold: threshold,
		logger:    logger,
	}, nil
}

// Seafloor parses the input and rasterizes the allowed segments.
func (s *VentSolver) Seafloor(text string) (vents.Seafloor, error) {
	segments, err := vents.ParseSegments(input.Lines(text))
	if err != nil {
		return nil, err
	}
	return vents.Accumulate(segments, s.allowed), nil
}

func (s *VentSolver) Solve(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	seafloor, err := s.Seafloor(text)
	if err != nil {
		return 0, err
	}

	s.logger.Debug().
		Str("solver", s.name).
		Str("orientations", s.allowed.String()).
		Int("covered", len(seafloor)).
		Msg("seafloor mapped")

	return seafloor.CountOverlaps(s.threshold), nil
}
