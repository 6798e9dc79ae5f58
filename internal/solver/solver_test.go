package solver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/config"
	"github.com/s-pike/advent2021/internal/models"
	"github.com/s-pike/advent2021/internal/puzzle"
)

const bingoSample = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7`

const ventSample = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
`

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func testConfig() *config.PuzzlesConfig {
	return &config.PuzzlesConfig{
		Puzzles: config.Puzzles{
			Solvers: []config.SolverConfiguration{
				{Name: "day04-part1", Day: 4, Part: 1, Kind: config.KindBingo, Enabled: true, Strategy: config.StrategyFirst},
				{Name: "day04-part2", Day: 4, Part: 2, Kind: config.KindBingo, Enabled: true, Strategy: config.StrategyLast},
				{Name: "day05-part1", Day: 5, Part: 1, Kind: config.KindVents, Enabled: true, Orientations: []string{"h", "v"}, Threshold: 2},
				{Name: "day05-part2", Day: 5, Part: 2, Kind: config.KindVents, Enabled: true, Orientations: []string{"h", "v", "d"}, Threshold: 2},
			},
		},
	}
}

func TestSolvers_Samples(t *testing.T) {
	registry, err := NewRegistryFromConfig(testConfig(), newTestLogger())
	if err != nil {
		t.Fatalf("NewRegistryFromConfig() failed: %v", err)
	}

	tests := []struct {
		day, part int
		input     string
		want      int
	}{
		{4, 1, bingoSample, 4512},
		{4, 2, bingoSample, 1924},
		{5, 1, ventSample, 5},
		{5, 2, ventSample, 12},
	}

	for _, tt := range tests {
		s, err := registry.Get(tt.day, tt.part)
		if err != nil {
			t.Fatalf("Get(%d, %d) failed: %v", tt.day, tt.part, err)
		}
		t.Run(s.Name(), func(t *testing.T) {
			got, err := s.Solve(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Solve() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestBingoSolver_NoWinner(t *testing.T) {
	s, err := NewBingoSolver(config.SolverConfiguration{Name: "b", Day: 4, Part: 1, Strategy: config.StrategyFirst}, newTestLogger())
	if err != nil {
		t.Fatalf("NewBingoSolver() failed: %v", err)
	}

	_, err = s.Solve(context.Background(), "1,2\n\n1 3\n4 5\n")
	if !errors.Is(err, ErrNoWinner) {
		t.Errorf("Expected ErrNoWinner, got %v", err)
	}
}

func TestBingoSolver_UnknownStrategy(t *testing.T) {
	_, err := NewBingoSolver(config.SolverConfiguration{Name: "b", Strategy: "middle"}, newTestLogger())
	if err == nil {
		t.Error("Expected error for unknown strategy")
	}
}

func TestVentSolver_ParseError(t *testing.T) {
	s, err := NewVentSolver(config.SolverConfiguration{Name: "v", Orientations: []string{"h"}, Threshold: 2}, newTestLogger())
	if err != nil {
		t.Fatalf("NewVentSolver() failed: %v", err)
	}

	_, err = s.Solve(context.Background(), "0,9 -> 5,9\n1,2 => 3,4\n")
	if !errors.Is(err, puzzle.ErrParse) {
		t.Errorf("Expected parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected error to name line 2, got %v", err)
	}
}

func TestVentSolver_Threshold(t *testing.T) {
	s, err := NewVentSolver(config.SolverConfiguration{Name: "v", Orientations: []string{"h", "v", "d"}, Threshold: 3}, newTestLogger())
	if err != nil {
		t.Fatalf("NewVentSolver() failed: %v", err)
	}

	got, err := s.Solve(context.Background(), ventSample)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if got != 2 {
		t.Errorf("Expected 2 points covered three times, got %d", got)
	}
}

func TestSolve_CancelledContext(t *testing.T) {
	registry, err := NewRegistryFromConfig(testConfig(), newTestLogger())
	if err != nil {
		t.Fatalf("NewRegistryFromConfig() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, info := range registry.List() {
		s, _ := registry.Get(info.Day, info.Part)
		if _, err := s.Solve(ctx, ventSample); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: expected context.Canceled, got %v", info.Name, err)
		}
	}
}

func TestPool_BuildFromConfig_SkipsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Puzzles.Solvers[1].Enabled = false

	solvers, err := NewPool(newTestLogger()).BuildFromConfig(cfg)
	if err != nil {
		t.Fatalf("BuildFromConfig() failed: %v", err)
	}
	if len(solvers) != 3 {
		t.Errorf("Expected 3 solvers, got %d", len(solvers))
	}
}

func TestPool_BuildFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PuzzlesConfig
		wantErr string
	}{
		{name: "nil config", cfg: nil, wantErr: "config is nil"},
		{
			name:    "nothing enabled",
			cfg:     &config.PuzzlesConfig{Puzzles: config.Puzzles{Solvers: []config.SolverConfiguration{{Name: "a", Kind: config.KindBingo}}}},
			wantErr: "no enabled solvers",
		},
		{
			name: "bad orientation",
			cfg: &config.PuzzlesConfig{Puzzles: config.Puzzles{Solvers: []config.SolverConfiguration{
				{Name: "vents", Day: 5, Part: 1, Kind: config.KindVents, Enabled: true, Orientations: []string{"sideways"}},
			}}},
			wantErr: "solver vents",
		},
		{
			name: "unknown kind",
			cfg: &config.PuzzlesConfig{Puzzles: config.Puzzles{Solvers: []config.SolverConfiguration{
				{Name: "x", Day: 6, Part: 1, Kind: "fish", Enabled: true},
			}}},
			wantErr: `unknown kind "fish"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPool(newTestLogger()).BuildFromConfig(tt.cfg)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry, err := NewRegistryFromConfig(testConfig(), newTestLogger())
	if err != nil {
		t.Fatalf("NewRegistryFromConfig() failed: %v", err)
	}

	_, err = registry.Get(6, 1)
	if !errors.Is(err, ErrSolverNotFound) {
		t.Errorf("Expected ErrSolverNotFound, got %v", err)
	}
}

func TestRegistry_ListAndParts(t *testing.T) {
	registry, err := NewRegistryFromConfig(testConfig(), newTestLogger())
	if err != nil {
		t.Fatalf("NewRegistryFromConfig() failed: %v", err)
	}

	want := []models.SolverInfo{
		{Name: "day04-part1", Day: 4, Part: 1},
		{Name: "day04-part2", Day: 4, Part: 2},
		{Name: "day05-part1", Day: 5, Part: 1},
		{Name: "day05-part2", Day: 5, Part: 2},
	}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int{1, 2}, registry.Parts(5)); diff != "" {
		t.Errorf("Parts(5) mismatch (-want +got):\n%s", diff)
	}
	if parts := registry.Parts(9); len(parts) != 0 {
		t.Errorf("Expected no parts for day 9, got %v", parts)
	}
}

func TestNewRegistry_Duplicate(t *testing.T) {
	a, _ := NewBingoSolver(config.SolverConfiguration{Name: "a", Day: 4, Part: 1, Strategy: config.StrategyFirst}, newTestLogger())
	b, _ := NewBingoSolver(config.SolverConfiguration{Name: "b", Day: 4, Part: 1, Strategy: config.StrategyLast}, newTestLogger())

	if _, err := NewRegistry([]Solver{a, b}); err == nil {
		t.Error("Expected error for two solvers on one part")
	}
}
