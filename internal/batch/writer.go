package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

type Writer interface {
	Write(record OutputRecord) error
	Close() error
}

func NewWriter(w io.Writer, format string, logger *zerolog.Logger) (Writer, error) {
	switch format {
	case FormatJSONL:
		return &jsonlWriter{enc: json.NewEncoder(w), logger: logger}, nil
	case FormatSummary:
		return &summaryWriter{w: w, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: %s, %s)", format, FormatJSONL, FormatSummary)
	}
}

type jsonlWriter struct {
	enc    *json.Encoder
	count  int
	logger *zerolog.Logger
}

func (j *jsonlWriter) Write(record OutputRecord) error {
	if err := j.enc.Encode(record); err != nil {
		return err
	}
	j.count++
	return nil
}

func (j *jsonlWriter) Close() error {
	j.logger.Debug().Int("records", j.count).Msg("JSONL output closed")
	return nil
}

// summaryWriter buffers records and prints a table plus totals on Close.
type summaryWriter struct {
	w       io.Writer
	records []OutputRecord
	logger  *zerolog.Logger
}

func (s *summaryWriter) Write(record OutputRecord) error {
	s.records = append(s.records, record)
	return nil
}

func (s *summaryWriter) Close() error {
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Line < s.records[j].Line
	})

	tw := tabwriter.NewWriter(s.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tDAY\tPART\tSOLVER\tSTATUS\tANSWER\tDURATION\tERROR")

	solved, failed := 0, 0
	var total time.Duration
	for _, r := range s.records {
		answer := "-"
		if r.Failed() {
			failed++
		} else {
			solved++
			answer = fmt.Sprint(r.Answer)
		}
		total += r.Duration
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Line, r.Day, r.Part, r.Solver, r.Status, answer, r.Duration.Round(time.Microsecond), r.Error)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(s.w, "\ntotal: %d  solved: %d  failed: %d  solve time: %s\n",
		len(s.records), solved, failed, total.Round(time.Microsecond))

	s.logger.Debug().Int("solved", solved).Int("failed", failed).Msg("Summary written")
	return err
}
