package solver

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/config"
	"github.com/s-pike/advent2021/internal/models"
)

type key struct {
	day  int
	part int
}

// Registry looks solvers up by day and part.
type Registry struct {
	solvers map[key]Solver
}

func NewRegistry(solvers []Solver) (*Registry, error) {
	m := make(map[key]Solver, len(solvers))
	for _, s := range solvers {
		k := key{day: s.Day(), part: s.Part()}
		if other, ok := m[k]; ok {
			return nil, fmt.Errorf("solvers %s and %s both handle day %d part %d", other.Name(), s.Name(), k.day, k.part)
		}
		m[k] = s
	}
	return &Registry{solvers: m}, nil
}

// NewRegistryFromConfig builds every enabled solver in cfg.
func NewRegistryFromConfig(cfg *config.PuzzlesConfig, logger *zerolog.Logger) (*Registry, error) {
	solvers, err := NewPool(logger).BuildFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	registry, err := NewRegistry(solvers)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("solver_count", len(solvers)).Msg("Solver registry initialized from config")
	return registry, nil
}

func (r *Registry) Get(day, part int) (Solver, error) {
	s, ok := r.solvers[key{day: day, part: part}]
	if !ok {
		return nil, fmt.Errorf("day %d part %d: %w", day, part, ErrSolverNotFound)
	}
	return s, nil
}

// Parts returns the registered parts for day in ascending order.
func (r *Registry) Parts(day int) []int {
	var parts []int
	for k := range r.solvers {
		if k.day == day {
			parts = append(parts, k.part)
		}
	}
	sort.Ints(parts)
	return parts
}

// List describes every registered solver ordered by day then part.
func (r *Registry) List() []models.SolverInfo {
	infos := make([]models.SolverInfo, 0, len(r.solvers))
	for _, s := range r.solvers {
		infos = append(infos, models.SolverInfo{
			Name:        s.Name(),
			Day:         s.Day(),
			Part:        s.Part(),
			Description: s.Description(),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Day != infos[j].Day {
			return infos[i].Day < infos[j].Day
		}
		return infos[i].Part < infos[j].Part
	})
	return infos
}
