package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
	"github.com/vovakirdan/twenty48/internal/registry"
	"github.com/vovakirdan/twenty48/internal/storage"
)

var (
	flagBenchGames  int
	flagBenchConfig string
	flagBenchNoSave bool
)

var benchCmd = &cobra.Command{
	Use:   "bench <agent>",
	Short: "Run headless games and report statistics",
	Long: `Play the specified number of full games without a UI and report
score statistics. Finished runs are recorded in the database unless
--no-save is given.

With --seed the whole batch is reproducible: game i uses seed+i.

Examples:
  twenty48 bench random --games 100
  twenty48 bench rollout --games 20
  twenty48 bench expectimax --games 5 --seed 42 --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 10, "Number of games to play")
	benchCmd.Flags().StringVar(&flagBenchConfig, "config", "", "Path to custom agent config YAML")
	benchCmd.Flags().BoolVar(&flagBenchNoSave, "no-save", false, "Do not record runs in the database")
}

func runBench(cmd *cobra.Command, args []string) {
	agentID := args[0]

	if !registry.Exists(agentID) {
		fmt.Fprintf(os.Stderr, "Error: unknown agent %q\n", agentID)
		fmt.Fprintln(os.Stderr, "Run 'twenty48 agents' to see available agents.")
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bench",
	})

	if flagBenchGames < 1 {
		logger.Fatal("--games must be at least 1")
	}

	cfg, err := config.Load(flagBenchConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	var store *storage.Store
	if !flagBenchNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open runs database, runs will not be saved", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	logger.Info("starting benchmark",
		"agent", agentID,
		"games", flagBenchGames,
		"seed", baseSeed,
	)

	var (
		totalScore int64
		totalMoves int64
		bestScore  int
		bestTile   int
	)

	start := time.Now()

	for i := 0; i < flagBenchGames; i++ {
		seed := baseSeed + int64(i)
		board := game.New(rand.New(rand.NewSource(seed)))

		ag, err := registry.Create(agentID, board, cfg, seed)
		if err != nil {
			logger.Fatal("could not create agent", "error", err)
		}

		gameStart := time.Now()
		for !ag.Game().GameOver() {
			ag.MakeMove()
		}

		g := ag.Game()
		totalScore += int64(g.Score())
		totalMoves += int64(g.NumMoves())
		if g.Score() > bestScore {
			bestScore = g.Score()
		}
		if g.MaxTile() > bestTile {
			bestTile = g.MaxTile()
		}

		logger.Info("game finished",
			"game", i+1,
			"score", g.Score(),
			"moves", g.NumMoves(),
			"max_tile", g.MaxTile(),
			"duration", time.Since(gameStart).Round(time.Millisecond),
		)

		if store != nil {
			if _, err := store.SaveRun(agentID, g.Score(), g.NumMoves(), g.MaxTile()); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
	}

	logger.Info("benchmark finished",
		"games", flagBenchGames,
		"avg_score", totalScore/int64(flagBenchGames),
		"avg_moves", totalMoves/int64(flagBenchGames),
		"best_score", bestScore,
		"best_tile", bestTile,
		"duration", time.Since(start).Round(time.Millisecond),
	)
}
