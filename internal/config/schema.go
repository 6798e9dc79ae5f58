package config

// Solver kinds
const (
	KindBingo = "bingo"
	KindVents = "vents"
)

// Bingo strategies
const (
	StrategyFirst = "first"
	StrategyLast  = "last"
)

// PuzzlesConfig represents the complete solver configuration
type PuzzlesConfig struct {
	Puzzles Puzzles `yaml:"puzzles"`
}

// Puzzles holds shared defaults and the list of solvers
type Puzzles struct {
	Defaults Defaults              `yaml:"defaults"`
	Solvers  []SolverConfiguration `yaml:"solvers"`
}

// Defaults applies to every solver that leaves the field unset
type Defaults struct {
	Threshold    int      `yaml:"threshold"`
	Orientations []string `yaml:"orientations"`
}

// SolverConfiguration defines one puzzle part
type SolverConfiguration struct {
	Name        string `yaml:"name"`
	Day         int    `yaml:"day"`
	Part        int    `yaml:"part"`
	Kind        string `yaml:"kind"`
	Enabled     bool   `yaml:"enabled"`
	Description string `yaml:"description,omitempty"`

	// bingo
	Strategy string `yaml:"strategy,omitempty"`

	// vents
	Orientations []string `yaml:"orientations,omitempty"`
	Threshold    int      `yaml:"threshold,omitempty"`
}
