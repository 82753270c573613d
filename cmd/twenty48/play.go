package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/platform/tui"
	"github.com/vovakirdan/twenty48/internal/storage"
)

var flagPlayConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 with the keyboard",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD - Move tiles
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  twenty48 play
  twenty48 play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayConfig, "config", "", "Path to custom agent config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	runSession("user", flagPlayConfig, 0)
}

// runSession starts one TUI game session for the given agent and exits
// the process on error. Shared by play, menu and watch.
func runSession(agentID, configPath string, delay int) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	opts := tui.GameOptions{
		AgentID: agentID,
		Config:  cfg,
		Seed:    flagSeed,
		Delay:   delayDuration(delay),
	}

	runErr := tui.Run(opts, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
