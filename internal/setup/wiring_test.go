package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/models"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PUZZLES_CONFIG_PATH", "AOC_INPUT_DIR", "SOLVE_API_PORT", "REDIS_MAX_RETRIES", "SOLVE_GROUP"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.PuzzlesConfigPath != "configs/puzzles.yaml" {
		t.Errorf("Expected default config path, got %s", cfg.PuzzlesConfigPath)
	}
	if cfg.InputDir != "data" {
		t.Errorf("Expected default input dir 'data', got %s", cfg.InputDir)
	}
	if cfg.APIPort != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.APIPort)
	}
	if cfg.RedisMaxRetries != 5 {
		t.Errorf("Expected 5 redis retries, got %d", cfg.RedisMaxRetries)
	}
	if cfg.ConsumerGroup != "solve-group" {
		t.Errorf("Expected group solve-group, got %s", cfg.ConsumerGroup)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SOLVE_API_PORT", "9090")
	t.Setenv("REDIS_MAX_RETRIES", "not-a-number")
	t.Setenv("SOLVE_REQUEST_STREAM", "requests")

	cfg := LoadConfig()

	if cfg.APIPort != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.APIPort)
	}
	if cfg.RedisMaxRetries != 5 {
		t.Errorf("Expected fallback of 5 retries, got %d", cfg.RedisMaxRetries)
	}
	if cfg.RequestStream != "requests" {
		t.Errorf("Expected stream 'requests', got %s", cfg.RequestStream)
	}
}

func TestWire(t *testing.T) {
	logger := zerolog.Nop()
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "day-05_input-1.txt"), []byte("0,9 -> 5,9\n0,9 -> 2,9\n"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	deps, err := Wire(&Config{
		PuzzlesConfigPath: filepath.Join("..", "..", "configs", "puzzles.yaml"),
		InputDir:          dataDir,
	}, &logger)
	if err != nil {
		t.Fatalf("Wire() failed: %v", err)
	}

	if len(deps.Registry.List()) != 4 {
		t.Errorf("Expected 4 solvers, got %d", len(deps.Registry.List()))
	}

	result, err := deps.Executor.Execute(context.Background(), models.SolveRequest{Day: 5, Part: 1})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if result.Answer != 3 {
		t.Errorf("Expected 3 overlapping points, got %d", result.Answer)
	}
}

func TestWire_MissingConfig(t *testing.T) {
	logger := zerolog.Nop()
	_, err := Wire(&Config{PuzzlesConfigPath: filepath.Join(t.TempDir(), "none.yaml")}, &logger)
	if err == nil {
		t.Error("Expected error for missing puzzles config")
	}
}
