package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/s-pike/advent2021/internal/models"
)

type Executor interface {
	Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
}

type SolverLister interface {
	List() []models.SolverInfo
}

// SolveInput is the MCP tool input schema (matches HTTP API field names).
type SolveInput struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"optional request identifier, generated when empty"`
	Day       int    `json:"day" jsonschema:"puzzle day"`
	Part      int    `json:"part" jsonschema:"puzzle part"`
	Input     string `json:"input,omitempty" jsonschema:"puzzle input text"`
	InputPath string `json:"input_path,omitempty" jsonschema:"path to a puzzle input file under the server input directory, used when input is empty"`
}

type ListSolversInput struct{}

type ListSolversOutput struct {
	Solvers []models.SolverInfo `json:"solvers" jsonschema:"registered solvers ordered by day and part"`
}

// NewSolveHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(exec Executor) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
		return Solve(ctx, exec, req, input)
	}
}

// Solve runs one puzzle part. Solver failures come back as tool errors.
func Solve(
	ctx context.Context,
	exec Executor,
	req *mcp.CallToolRequest,
	input SolveInput,
) (*mcp.CallToolResult, models.SolveResult, error) {
	result, err := exec.Execute(ctx, models.SolveRequest{
		RequestID: input.RequestID,
		Day:       input.Day,
		Part:      input.Part,
		Input:     input.Input,
		InputPath: input.InputPath,
	})
	return nil, result, err
}

func NewListSolversHandler(solvers SolverLister) func(context.Context, *mcp.CallToolRequest, ListSolversInput) (*mcp.CallToolResult, ListSolversOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListSolversInput) (*mcp.CallToolResult, ListSolversOutput, error) {
		return nil, ListSolversOutput{Solvers: solvers.List()}, nil
	}
}
