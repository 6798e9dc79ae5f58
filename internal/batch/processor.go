package batch

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/models"
)

type Executor interface {
	Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
}

// OutputRecord is one processed manifest line.
type OutputRecord struct {
	Line int `json:"line"`
	models.SolveResult
}

func (o OutputRecord) Failed() bool {
	return o.Status != models.StatusSolved
}

type Processor struct {
	executor        Executor
	continueOnError bool
	logger          *zerolog.Logger
}

func NewProcessor(executor Executor, continueOnError bool, logger *zerolog.Logger) *Processor {
	return &Processor{
		executor:        executor,
		continueOnError: continueOnError,
		logger:          logger,
	}
}

// Process runs records one at a time in manifest order. Without
// continue-on-error the first failure is emitted and processing stops.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan OutputRecord {
	out := make(chan OutputRecord)

	go func() {
		defer close(out)

		for _, record := range records {
			if ctx.Err() != nil {
				p.logger.Warn().Int("line", record.LineNumber).Msg("Processing cancelled")
				return
			}

			result := p.process(ctx, record)

			select {
			case out <- result:
			case <-ctx.Done():
				return
			}

			if result.Failed() && !p.continueOnError {
				p.logger.Error().Int("line", record.LineNumber).Str("error", result.Error).Msg("Stopping on first failure")
				return
			}
		}
	}()

	return out
}

func (p *Processor) process(ctx context.Context, record InputRecord) OutputRecord {
	if record.Error != nil {
		return OutputRecord{
			Line: record.LineNumber,
			SolveResult: models.SolveResult{
				ID:     record.Request.RequestID,
				Day:    record.Request.Day,
				Part:   record.Request.Part,
				Status: models.StatusFailed,
				Error:  record.Error.Error(),
			},
		}
	}

	result, err := p.executor.Execute(ctx, record.Request)
	if err != nil {
		p.logger.Warn().Err(err).Int("line", record.LineNumber).Str("id", result.ID).Msg("Record failed")
	}

	return OutputRecord{Line: record.LineNumber, SolveResult: result}
}
