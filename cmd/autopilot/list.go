package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-autopilot/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available planners",
	Long:  `Shows a list of all planners registered in the autopilot.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	planners := registry.List()

	if len(planners) == 0 {
		fmt.Println("No planners available.")
		return
	}

	fmt.Println("Available planners:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range planners {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print planners
	for _, p := range planners {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'autopilot run --planner <id>' to benchmark a planner.")
}
