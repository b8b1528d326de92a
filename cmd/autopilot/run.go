package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-autopilot/internal/config"
	"github.com/vovakirdan/snake-autopilot/internal/planner"
	"github.com/vovakirdan/snake-autopilot/internal/registry"
	"github.com/vovakirdan/snake-autopilot/internal/sim"
	"github.com/vovakirdan/snake-autopilot/internal/storage"
)

var (
	flagConfig   string
	flagPlanner  string
	flagGrid     int
	flagEpisodes int
	flagMaxTicks int
	flagBias     float64
	flagNoStore  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run simulation episodes",
	Long: `Run one or more autopilot episodes and record the results.

Each episode plays a full game: the planner is queried for a path, the
snake walks it one cell per tick, and planning repeats until the snake
dies, covers the board, or runs out of moves. Episode seeds derive from
the base seed, so a run is fully reproducible.

Examples:
  autopilot run
  autopilot run --planner greedy --grid 20 --episodes 50
  autopilot run --seed 42 --verbose
  autopilot run --config ./my-sim.yaml`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	runCmd.Flags().StringVar(&flagPlanner, "planner", "", "Planner ID (overrides config)")
	runCmd.Flags().IntVar(&flagGrid, "grid", 0, "Torus side length in cells (overrides config)")
	runCmd.Flags().IntVar(&flagEpisodes, "episodes", 0, "Number of episodes (overrides config)")
	runCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Per-episode tick cap (overrides config)")
	runCmd.Flags().Float64Var(&flagBias, "bias", -1, "Open-space bias weight (overrides config)")
	runCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not persist episode results")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadSim(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if cmd.Flags().Changed("planner") {
		cfg.Run.Planner = flagPlanner
	}
	if cmd.Flags().Changed("grid") {
		cfg.Board.Size = flagGrid
	}
	if cmd.Flags().Changed("episodes") {
		cfg.Run.Episodes = flagEpisodes
	}
	if cmd.Flags().Changed("max-ticks") {
		cfg.Run.MaxTicks = flagMaxTicks
	}
	if cmd.Flags().Changed("bias") {
		cfg.Search.Bias = flagBias
	}

	if cfg.Board.Size < 4 {
		fmt.Fprintf(os.Stderr, "Error: grid size %d is too small (minimum 4)\n", cfg.Board.Size)
		os.Exit(1)
	}
	if cfg.Run.Episodes < 1 {
		cfg.Run.Episodes = 1
	}

	if !registry.Exists(cfg.Run.Planner) {
		fmt.Fprintf(os.Stderr, "Error: unknown planner %q\n", cfg.Run.Planner)
		fmt.Fprintln(os.Stderr, "Run 'autopilot list' to see available planners.")
		os.Exit(1)
	}

	// Bias applies to planners created after this point.
	planner.SetBias(cfg.Search.Bias)

	p, err := registry.Create(cfg.Run.Planner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating planner: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "autopilot",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	// Open episode storage
	var store *storage.Store
	if !flagNoStore {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open episode database", "error", err)
			// Continue without storage - episodes still run
			store = nil
		} else {
			defer store.Close()
		}
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	runner := sim.NewRunner(logger, cfg.Run.MaxTicks)

	fmt.Printf("Planner: %s (%s)\n", p.ID(), p.Title())
	fmt.Printf("Grid: %dx%d  Episodes: %d  Base seed: %d\n", cfg.Board.Size, cfg.Board.Size, cfg.Run.Episodes, baseSeed)
	fmt.Println()
	fmt.Printf("  %-3s  %-8s  %-10s  %-8s  %s\n", "Ep", "Score", "Ticks", "Replans", "Outcome")
	fmt.Printf("  %-3s  %-8s  %-10s  %-8s  %s\n", "--", "-----", "-----", "-------", "-------")

	var totalScore int
	bestScore := 0
	for i := 0; i < cfg.Run.Episodes; i++ {
		res := runner.Episode(p, cfg.Board.Size, baseSeed+int64(i))

		fmt.Printf("  %-3d  %-8d  %-10d  %-8d  %s\n", i+1, res.Score, res.Ticks, res.Replans, res.Outcome)

		totalScore += res.Score
		if res.Score > bestScore {
			bestScore = res.Score
		}

		if store != nil {
			if err := store.SaveResult(res); err != nil {
				logger.Warn("could not save episode", "error", err)
			}
		}
	}

	fmt.Println()
	fmt.Printf("Best: %d  Average: %.1f\n", bestScore, float64(totalScore)/float64(cfg.Run.Episodes))
}
