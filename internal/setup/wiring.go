package setup

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/config"
	"github.com/s-pike/advent2021/internal/executor"
	"github.com/s-pike/advent2021/internal/input"
	"github.com/s-pike/advent2021/internal/solver"
)

type Config struct {
	PuzzlesConfigPath string
	InputDir          string
	LogLevel          string
	APIPort           string
	RedisAddr         string
	RedisPassword     string
	RedisMaxRetries   int
	RequestStream     string
	ResultStream      string
	ConsumerGroup     string
}

type Dependencies struct {
	Executor *executor.Executor
	Registry *solver.Registry
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		PuzzlesConfigPath: getEnv("PUZZLES_CONFIG_PATH", config.DefaultPath),
		InputDir:          getEnv("AOC_INPUT_DIR", input.DefaultDir),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		APIPort:           getEnv("SOLVE_API_PORT", "8080"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisMaxRetries:   getEnvInt("REDIS_MAX_RETRIES", 5),
		RequestStream:     getEnv("SOLVE_REQUEST_STREAM", "solve-requests"),
		ResultStream:      getEnv("SOLVE_RESULT_STREAM", "solve-results"),
		ConsumerGroup:     getEnv("SOLVE_GROUP", "solve-group"),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	// Load solver definitions from YAML
	puzzlesConfig, err := config.LoadPuzzlesConfig(cfg.PuzzlesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzles config: %w", err)
	}

	registry, err := solver.NewRegistryFromConfig(puzzlesConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build solvers from config: %w", err)
	}

	loader := input.NewFileLoader(cfg.InputDir, logger)
	exec := executor.NewExecutor(registry, loader, logger)

	return &Dependencies{
		Executor: exec,
		Registry: registry,
		Logger:   logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
