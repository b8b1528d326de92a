package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-autopilot/internal/registry"
	"github.com/vovakirdan/snake-autopilot/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [planner]",
	Short: "Show stored episode statistics",
	Long: `Display aggregated episode statistics.

With a planner ID, shows that planner's aggregates plus its top 10
episodes. Without arguments, shows a summary for every planner that has
recorded episodes.

Examples:
  autopilot stats
  autopilot stats safe`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening episode database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printAllStats(store)
		return
	}

	plannerID := args[0]
	if !registry.Exists(plannerID) {
		fmt.Fprintf(os.Stderr, "Error: unknown planner %q\n", plannerID)
		fmt.Fprintln(os.Stderr, "Run 'autopilot list' to see available planners.")
		os.Exit(1)
	}

	stats, err := store.GetPlannerStats(plannerID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Episode stats - %s\n", plannerID)
	fmt.Println()

	if stats.Episodes == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'autopilot run --planner %s' to record the first one!\n", plannerID)
		return
	}

	fmt.Printf("  Episodes: %d  Best: %d  Avg score: %.1f  Avg ticks: %.0f  Board fills: %d\n",
		stats.Episodes, stats.BestScore, stats.AvgScore, stats.AvgTicks, stats.Filled)
	fmt.Println()

	episodes, err := store.TopEpisodes(plannerID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
		os.Exit(1)
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Grid", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----", "-------", "----")

	for i, rec := range episodes {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-10d  %-8d  %-8s  %s\n", i+1, rec.Score, rec.Ticks, rec.GridSize, rec.Outcome, dateStr)
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.GetAllPlannerStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'autopilot run' to record the first ones!")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-9s  %-6s  %-10s  %-6s  %s\n", "Planner", "Episodes", "Best", "Avg score", "Fills", "Last run")
	fmt.Printf("  %-10s  %-9s  %-6s  %-10s  %-6s  %s\n", "-------", "--------", "----", "---------", "-----", "--------")

	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-10s  %-9d  %-6d  %-10.1f  %-6d  %s\n",
			st.PlannerID, st.Episodes, st.BestScore, st.AvgScore, st.Filled,
			st.LastRun.Format("2006-01-02 15:04"))
	}
}
