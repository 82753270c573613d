package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/registry"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List all available agents",
	Long:  `Shows a list of all agents that can play the game.`,
	Run:   runAgents,
}

func runAgents(cmd *cobra.Command, args []string) {
	agents := registry.List()

	if len(agents) == 0 {
		fmt.Println("No agents available.")
		return
	}

	fmt.Println("Available agents:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range agents {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, a := range agents {
		fmt.Printf("  %-*s  %s\n", maxIDLen, a.ID, a.Title)
	}

	fmt.Println()
	fmt.Println("Run 'twenty48 watch <id>' to watch an agent play.")
}
