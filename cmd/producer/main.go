package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/s-pike/advent2021/internal/input"
	"github.com/s-pike/advent2021/internal/models"
	red "github.com/s-pike/advent2021/internal/redis"
	"github.com/s-pike/advent2021/internal/setup"
	"github.com/s-pike/advent2021/internal/stream/redis"
)

func main() {
	data := flag.String("d", "", "Inline JSON SolveRequest")
	day := flag.Int("day", 0, "Puzzle day")
	part := flag.Int("part", 1, "Puzzle part")
	file := flag.String("file", "", "Puzzle input file, sent inline")
	stream := flag.String("stream", "", "Stream name (overrides SOLVE_REQUEST_STREAM)")
	flag.Parse()

	if *data == "" && *day == 0 {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' | producer -day <n> -part <n> [-file <input>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	req, err := buildRequest(*data, *day, *part, *file)
	if err != nil {
		log.Error().Err(err).Msg("invalid request")
		os.Exit(1)
	}

	if err := run(req, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func buildRequest(data string, day, part int, file string) (models.SolveRequest, error) {
	var req models.SolveRequest
	if data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return req, err
		}
		return req, nil
	}

	req = models.SolveRequest{Day: day, Part: part}
	if file != "" {
		text, err := input.ReadFile(file)
		if err != nil {
			return req, err
		}
		req.Input = text
	}
	return req, nil
}

func run(req models.SolveRequest, stream string) error {
	_ = godotenv.Load()

	cfg := setup.LoadConfig()
	if stream == "" {
		stream = cfg.RequestStream
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 3)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := redis.Publish(ctx, client, stream, req)
	if err != nil {
		return err
	}

	log.Info().
		Str("stream", stream).
		Str("id", id).
		Str("request_id", req.RequestID).
		Int("day", req.Day).
		Int("part", req.Part).
		Msg("Published successfully!")
	return nil
}
