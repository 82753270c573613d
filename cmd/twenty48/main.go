// twenty48 is a terminal 2048 where you can play yourself or watch
// search agents play.
//
// Usage:
//
//	twenty48 play              - Play with the keyboard
//	twenty48 menu              - Pick an agent interactively
//	twenty48 watch <agent>     - Watch an agent play
//	twenty48 agents            - List available agents
//	twenty48 bench <agent>     - Run headless games and report statistics
//	twenty48 scores [agent]    - Show best recorded runs
//	twenty48 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.twenty48/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "2048 in your terminal, with agents that play it for you",
	Long: `twenty48 is a terminal 2048. Play it yourself, or hand the board
to a search agent and watch it play.

Available commands:
  play     - Play with the keyboard
  menu     - Interactive agent picker
  watch    - Watch an agent play
  agents   - List available agents
  bench    - Run headless games and report statistics
  scores   - View best recorded runs
  serve    - Start SSH server for remote play

Examples:
  twenty48 play
  twenty48 watch expectimax
  twenty48 bench rollout --games 20
  twenty48 serve --ssh :2222
  twenty48 scores expectimax`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twenty48/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
