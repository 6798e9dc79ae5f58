package models

import (
	"time"
)

type Status string

const (
	StatusSolved Status = "solved"
	StatusFailed Status = "failed"
)

// Input message

type SolveRequest struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"Unique request identifier, generated when empty"`
	Day       int    `json:"day" jsonschema:"Puzzle day (4 or 5)"`
	Part      int    `json:"part" jsonschema:"Puzzle part (1 or 2)"`
	Input     string `json:"input,omitempty" jsonschema:"Inline puzzle input text"`
	InputPath string `json:"input_path,omitempty" jsonschema:"Path to a puzzle input file"`
}

// Output of one solver run
type SolveResult struct {
	ID       string        `json:"id"`
	Solver   string        `json:"solver"`
	Day      int           `json:"day"`
	Part     int           `json:"part"`
	Answer   int           `json:"answer"`
	Status   Status        `json:"status"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// SolverInfo describes a registered solver
type SolverInfo struct {
	Name        string `json:"name"`
	Day         int    `json:"day"`
	Part        int    `json:"part"`
	Description string `json:"description,omitempty"`
}
