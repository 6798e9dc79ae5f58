package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/s-pike/advent2021/internal/input"
	"github.com/s-pike/advent2021/internal/models"
	"github.com/s-pike/advent2021/internal/puzzle"
	"github.com/s-pike/advent2021/internal/setup"
	"github.com/s-pike/advent2021/internal/solver"
	"github.com/s-pike/advent2021/internal/vents"
)

type seafloorMapper interface {
	Seafloor(text string) (vents.Seafloor, error)
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	day := flag.Int("day", 0, "Puzzle day")
	part := flag.Int("part", 0, "Puzzle part (0 runs every configured part of the day)")
	inputPath := flag.String("input", "", "Input file (default <dir>/day-XX_input-1.txt)")
	dir := flag.String("dir", "", "Input directory (overrides AOC_INPUT_DIR)")
	configPath := flag.String("config", "", "Solver config (overrides PUZZLES_CONFIG_PATH)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	render := flag.Bool("render", false, "Print the vent diagram (day 5)")
	flag.Parse()

	if *day < 1 {
		fmt.Fprintln(os.Stderr, "Usage: solve -day <n> [-part <n>] [-input <file>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()
	if *dir != "" {
		cfg.InputDir = *dir
	}
	if *configPath != "" {
		cfg.PuzzlesConfigPath = *configPath
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	parts := []int{*part}
	if *part == 0 {
		parts = deps.Registry.Parts(*day)
		if len(parts) == 0 {
			log.Fatal().Int("day", *day).Msg("No solvers configured for day")
		}
	}

	var text string
	if *inputPath != "" {
		text, err = input.ReadFile(*inputPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read input")
		}
	}

	au := aurora.NewAurora(!*noColor)
	failed := false

	for _, p := range parts {
		req := models.SolveRequest{Day: *day, Part: p, Input: text}

		result, err := deps.Executor.Execute(ctx, req)
		if err != nil {
			failed = true
			fmt.Printf("Day %d part %d: %s %s\n", *day, p, au.Red("failed"), describe(err))
			continue
		}

		fmt.Printf("Day %d part %d (%s): %s %s\n",
			*day, p, result.Solver,
			au.Bold(au.Green(result.Answer)),
			au.Faint(result.Duration.Round(time.Microsecond)))

		if *render {
			renderSeafloor(ctx, deps, cfg.InputDir, req, au)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, solver.ErrSolverNotFound):
		return "(no solver configured)"
	case puzzle.IsInputError(err):
		return "(bad input) " + err.Error()
	default:
		return err.Error()
	}
}

func renderSeafloor(ctx context.Context, deps *setup.Dependencies, dir string, req models.SolveRequest, au aurora.Aurora) {
	s, err := deps.Registry.Get(req.Day, req.Part)
	if err != nil {
		return
	}
	mapper, ok := s.(seafloorMapper)
	if !ok {
		log.Warn().Str("solver", s.Name()).Msg("Solver has no diagram to render")
		return
	}

	text, err := input.NewFileLoader(dir, &log.Logger).Load(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load input for rendering")
		return
	}
	seafloor, err := mapper.Seafloor(text)
	if err != nil {
		log.Error().Err(err).Msg("Failed to map seafloor")
		return
	}

	diagram, err := seafloor.Render()
	if err != nil {
		log.Error().Err(err).Msg("Failed to render seafloor")
		return
	}

	for _, line := range strings.Split(strings.TrimRight(diagram, "\n"), "\n") {
		var b strings.Builder
		for _, r := range line {
			switch {
			case r == '.':
				b.WriteString(au.Faint(".").String())
			case r == '1':
				b.WriteRune(r)
			default:
				b.WriteString(au.Red(string(r)).String())
			}
		}
		fmt.Println(b.String())
	}
}
