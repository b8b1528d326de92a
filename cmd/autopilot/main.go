// autopilot runs the self-driving snake on a toroidal grid and keeps
// score of how its planners perform.
//
// Usage:
//
//	autopilot list               - List available planners
//	autopilot run                - Run simulation episodes
//	autopilot stats [planner]    - Show stored episode statistics
//
// Global flags:
//
//	--seed <value>  - Base RNG seed for reproducible runs (0 = time-based)
//	--db <path>     - Episode database path (default: ~/.autopilot/episodes.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import planners to register them
	_ "github.com/vovakirdan/snake-autopilot/internal/planner"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autopilot",
	Short: "Snake autopilot - benchmark self-driving snake planners",
	Long: `Snake autopilot simulates an AI-controlled snake on a wrap-around
grid and records how far each planning strategy gets before dying,
stalling, or covering the whole board.

Available commands:
  list     - Show all registered planners
  run      - Run simulation episodes with a planner
  stats    - View stored episode statistics

Examples:
  autopilot list
  autopilot run --planner safe --grid 30 --episodes 20
  autopilot run --planner greedy --seed 42
  autopilot stats safe`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Base RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.autopilot/episodes.db", "Path to episode database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
}
