package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/registry"
)

var (
	flagWatchConfig string
	flagWatchDelay  int
)

var watchCmd = &cobra.Command{
	Use:   "watch <agent>",
	Short: "Watch an agent play",
	Long: `Start a game driven by the specified agent and watch it play.

The delay flag slows the agent down so the game is watchable; set it
to 0 to run at full speed.

Examples:
  twenty48 watch random
  twenty48 watch rollout --delay 50
  twenty48 watch expectimax --config ./my-agents.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchConfig, "config", "", "Path to custom agent config YAML")
	watchCmd.Flags().IntVar(&flagWatchDelay, "delay", 80, "Pause between agent moves in milliseconds")
}

// delayDuration converts the millisecond flag to a duration.
func delayDuration(ms int) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func runWatch(cmd *cobra.Command, args []string) {
	agentID := args[0]

	if !registry.Exists(agentID) {
		fmt.Fprintf(os.Stderr, "Error: unknown agent %q\n", agentID)
		fmt.Fprintln(os.Stderr, "Run 'twenty48 agents' to see available agents.")
		os.Exit(1)
	}

	runSession(agentID, flagWatchConfig, flagWatchDelay)
}
