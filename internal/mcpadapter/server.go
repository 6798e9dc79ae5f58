package mcpadapter

import "github.com/modelcontextprotocol/go-sdk/mcp"

// NewServer registers the solve_puzzle and list_solvers tools.
func NewServer(exec Executor, solvers SolverLister) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "advent2021",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve an Advent of Code 2021 puzzle part (day 4 giant squid bingo, day 5 hydrothermal venture) from inline input or an input file",
	}, NewSolveHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_solvers",
		Description: "List the configured puzzle solvers",
	}, NewListSolversHandler(solvers))

	return server
}
