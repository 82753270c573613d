package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/registry"
	"github.com/vovakirdan/twenty48/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [agent]",
	Short: "Show best recorded runs",
	Long: `Display the top 10 recorded runs. With an agent argument, only
that agent's runs are shown.

Examples:
  twenty48 scores
  twenty48 scores expectimax`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	agentID := ""
	if len(args) > 0 {
		agentID = args[0]
		if !registry.Exists(agentID) {
			fmt.Fprintf(os.Stderr, "Error: unknown agent %q\n", agentID)
			fmt.Fprintln(os.Stderr, "Run 'twenty48 agents' to see available agents.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(agentID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if agentID == "" {
		fmt.Println("Best runs - all agents")
	} else {
		fmt.Printf("Best runs - %s\n", agentID)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'twenty48 play' or 'twenty48 watch <agent>' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %s\n", "Rank", "Agent", "Score", "Moves", "Tile", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-6d  %s\n",
			i+1, entry.AgentID, entry.Score, entry.Moves, entry.MaxTile, dateStr)
	}

	if agentID != "" {
		fmt.Println()
		if highScore, err := store.HighScore(agentID); err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}
}
