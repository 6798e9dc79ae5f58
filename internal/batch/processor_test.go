package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/s-pike/advent2021/internal/models"
)

type fakeExecutor struct {
	answers map[int]int // by day
	calls   int
}

func (f *fakeExecutor) Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	f.calls++
	answer, ok := f.answers[req.Day]
	if !ok {
		err := errors.New("solver not found")
		return models.SolveResult{ID: req.RequestID, Day: req.Day, Part: req.Part, Status: models.StatusFailed, Error: err.Error()}, err
	}
	return models.SolveResult{ID: req.RequestID, Day: req.Day, Part: req.Part, Answer: answer, Status: models.StatusSolved}, nil
}

func collect(ch <-chan OutputRecord) []OutputRecord {
	var out []OutputRecord
	for r := range ch {
		out = append(out, r)
	}
	return out
}

func testRecords() []InputRecord {
	return []InputRecord{
		{LineNumber: 1, Request: models.SolveRequest{RequestID: "a", Day: 4, Part: 1}},
		{LineNumber: 2, Request: models.SolveRequest{RequestID: "b", Day: 9, Part: 1}},
		{LineNumber: 4, Error: errors.New("line 4: unexpected end of JSON input")},
		{LineNumber: 5, Request: models.SolveRequest{RequestID: "c", Day: 5, Part: 2}},
	}
}

func TestProcessor_ContinueOnError(t *testing.T) {
	exec := &fakeExecutor{answers: map[int]int{4: 4512, 5: 12}}
	processor := NewProcessor(exec, true, newTestLogger())

	results := collect(processor.Process(context.Background(), testRecords()))

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if exec.calls != 3 {
		t.Errorf("expected 3 executor calls (malformed record skipped), got %d", exec.calls)
	}

	wantFailed := []bool{false, true, true, false}
	for i, r := range results {
		if r.Failed() != wantFailed[i] {
			t.Errorf("result %d (line %d): failed = %v, want %v", i, r.Line, r.Failed(), wantFailed[i])
		}
	}
	if results[2].Line != 4 || results[2].Error == "" {
		t.Errorf("expected malformed record to carry line 4 and an error, got %+v", results[2])
	}
	if results[3].Answer != 12 {
		t.Errorf("expected answer 12, got %d", results[3].Answer)
	}
}

func TestProcessor_StopOnError(t *testing.T) {
	exec := &fakeExecutor{answers: map[int]int{4: 4512, 5: 12}}
	processor := NewProcessor(exec, false, newTestLogger())

	results := collect(processor.Process(context.Background(), testRecords()))

	if len(results) != 2 {
		t.Fatalf("expected processing to stop after the first failure, got %d results", len(results))
	}
	if !results[1].Failed() {
		t.Error("expected last emitted result to be the failure")
	}
}

func TestProcessor_Cancelled(t *testing.T) {
	exec := &fakeExecutor{answers: map[int]int{4: 4512, 5: 12}}
	processor := NewProcessor(exec, true, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := collect(processor.Process(ctx, testRecords()))
	if len(results) != 0 {
		t.Errorf("expected no results after cancellation, got %d", len(results))
	}
}
