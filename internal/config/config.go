// Package config provides YAML-based configuration loading for the
// autopilot simulator. The planning engine itself takes no
// configuration; everything here tunes the harness around it.
package config

// SimConfig contains all configuration for a simulation run.
type SimConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Run    RunConfig    `yaml:"run"`
	Search SearchConfig `yaml:"search"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size int `yaml:"size"` // Torus side length in cells
}

// RunConfig defines how many episodes to run and when to cut them off.
type RunConfig struct {
	Planner  string `yaml:"planner"`   // Planner ID ("safe", "greedy")
	Episodes int    `yaml:"episodes"`  // Episodes per invocation
	MaxTicks int    `yaml:"max_ticks"` // Per-episode tick cap, 0 = default
}

// SearchConfig tunes the goal-directed search.
type SearchConfig struct {
	// Bias is the open-space preference weight subtracted from A*
	// f-scores per free neighbor. Negative means library default.
	Bias float64 `yaml:"bias"`
}

// DefaultSimConfig returns the hardcoded fallback configuration, used
// when even the embedded default YAML cannot be parsed.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Board: BoardConfig{
			Size: 30,
		},
		Run: RunConfig{
			Planner:  "safe",
			Episodes: 10,
			MaxTicks: 0,
		},
		Search: SearchConfig{
			Bias: -1,
		},
	}
}
