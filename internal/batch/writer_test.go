package batch

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/s-pike/advent2021/internal/models"
)

func sampleOutput() []OutputRecord {
	return []OutputRecord{
		{Line: 3, SolveResult: models.SolveResult{ID: "b", Solver: "day05-part1", Day: 5, Part: 1, Answer: 5, Status: models.StatusSolved, Duration: time.Millisecond}},
		{Line: 1, SolveResult: models.SolveResult{ID: "a", Solver: "day04-part1", Day: 4, Part: 1, Answer: 4512, Status: models.StatusSolved, Duration: 2 * time.Millisecond}},
		{Line: 4, SolveResult: models.SolveResult{ID: "c", Day: 9, Part: 1, Status: models.StatusFailed, Error: "solver not found"}},
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, "csv", newTestLogger()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSONL, newTestLogger())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	for _, r := range sampleOutput() {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	want := map[string]any{
		"line":        float64(3),
		"id":          "b",
		"solver":      "day05-part1",
		"day":         float64(5),
		"part":        float64(1),
		"answer":      float64(5),
		"status":      "solved",
		"duration_ns": float64(time.Millisecond),
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestWriter_Summary(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatSummary, newTestLogger())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	for _, r := range sampleOutput() {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Error("summary should not be written before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "total: 3  solved: 2  failed: 1") {
		t.Errorf("missing totals line in:\n%s", out)
	}

	rows := strings.Split(out, "\n")
	if !strings.HasPrefix(rows[1], "1 ") {
		t.Errorf("expected rows ordered by line, first row: %q", rows[1])
	}
	if !strings.Contains(out, "solver not found") {
		t.Errorf("expected failure reason in summary:\n%s", out)
	}
}
