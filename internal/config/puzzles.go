package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const DefaultPath = "configs/puzzles.yaml"

func LoadPuzzlesConfig(path string) (*PuzzlesConfig, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParsePuzzlesConfig(data)
}

func ParsePuzzlesConfig(data []byte) (*PuzzlesConfig, error) {
	var cfg PuzzlesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PuzzlesConfig) {
	if cfg.Puzzles.Defaults.Threshold == 0 {
		cfg.Puzzles.Defaults.Threshold = 2
	}
	if len(cfg.Puzzles.Defaults.Orientations) == 0 {
		cfg.Puzzles.Defaults.Orientations = []string{"horizontal", "vertical"}
	}

	for i := range cfg.Puzzles.Solvers {
		s := &cfg.Puzzles.Solvers[i]
		switch s.Kind {
		case KindBingo:
			if s.Strategy == "" {
				s.Strategy = StrategyFirst
			}
		case KindVents:
			if s.Threshold == 0 {
				s.Threshold = cfg.Puzzles.Defaults.Threshold
			}
			if len(s.Orientations) == 0 {
				s.Orientations = cfg.Puzzles.Defaults.Orientations
			}
		}
	}
}

func (c *PuzzlesConfig) Validate() error {
	names := make(map[string]bool)
	parts := make(map[[2]int]string)

	for _, s := range c.Puzzles.Solvers {
		if s.Name == "" {
			return fmt.Errorf("solver for day %d part %d has no name", s.Day, s.Part)
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate solver name %s", s.Name)
		}
		names[s.Name] = true

		if s.Day < 1 || s.Part < 1 {
			return fmt.Errorf("solver %s: day and part must be positive", s.Name)
		}

		switch s.Kind {
		case KindBingo:
			if s.Strategy != StrategyFirst && s.Strategy != StrategyLast {
				return fmt.Errorf("solver %s: unknown strategy %q", s.Name, s.Strategy)
			}
		case KindVents:
			if s.Threshold < 1 {
				return fmt.Errorf("solver %s: threshold must be at least 1", s.Name)
			}
		default:
			return fmt.Errorf("solver %s: unknown kind %q", s.Name, s.Kind)
		}

		if !s.Enabled {
			continue
		}
		key := [2]int{s.Day, s.Part}
		if other, ok := parts[key]; ok {
			return fmt.Errorf("solvers %s and %s both handle day %d part %d", other, s.Name, s.Day, s.Part)
		}
		parts[key] = s.Name
	}

	return nil
}
