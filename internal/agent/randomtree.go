package agent

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
)

// Metric selects how a finished rollout is judged.
type Metric int

const (
	// MetricScore sums the terminal score across rollouts.
	MetricScore Metric = iota
	// MetricMoves sums how many moves the rollout survived.
	MetricMoves
)

// String returns the metric's config/display name.
func (m Metric) String() string {
	if m == MetricMoves {
		return "moves"
	}
	return "score"
}

// ParseMetric maps a config string to a Metric, defaulting to score.
func ParseMetric(s string) Metric {
	if s == "moves" {
		return MetricMoves
	}
	return MetricScore
}

// RandomTree scores each direction by the summed outcome of many random
// rollouts from the post-move board, then plays the best one.
type RandomTree struct {
	game     game.Board
	rng      *rand.Rand
	simCount int
	metric   Metric
	parallel bool

	lastScores MoveScores
	lastAvail  []game.Move
}

// NewRandomTree creates a rollout-averaging agent owning the given board.
func NewRandomTree(b game.Board, cfg config.RandomTreeConfig, seed int64) *RandomTree {
	simCount := cfg.SimCount
	if simCount < 1 {
		simCount = 1
	}
	return &RandomTree{
		game:     b,
		rng:      rand.New(rand.NewSource(seed)),
		simCount: simCount,
		metric:   ParseMetric(cfg.Metric),
		parallel: cfg.Parallel,
	}
}

// Game returns the owned board.
func (a *RandomTree) Game() *game.Board {
	return &a.game
}

// NextMove scores all directions and returns the best available one.
func (a *RandomTree) NextMove() game.Move {
	avail := a.game.AvailableMoves()
	scores := ScoreMoves(a.game, a.simCount, a.metric, a.parallel, a.rng)

	a.lastScores = scores
	a.lastAvail = avail

	return scores.BestOf(avail)
}

// MakeMove commits the best-scoring move to the owned board.
func (a *RandomTree) MakeMove() {
	a.game.MakeMove(a.NextMove(), a.rng)
}

// Messages reports the per-move averages, highlighting the winner.
func (a *RandomTree) Messages() []Message {
	msgs := []Message{
		{Text: "Random tree search", Highlight: true},
		{Text: fmt.Sprintf(
			"Averaging %d rollouts per move, comparing by %s.",
			a.simCount, a.metric)},
		{Text: ""},
	}

	best := a.lastScores.BestOf(a.lastAvail)
	for _, m := range game.Moves {
		msgs = append(msgs, Message{
			Text:      fmt.Sprintf("%s: %d", m, a.lastScores[m]/a.simCount),
			Highlight: m == best && len(a.lastAvail) > 0,
		})
	}
	return msgs
}

// HandleKey ignores everything except quit.
func (a *RandomTree) HandleKey(k Key) InputAction {
	if k == KeyQuit {
		return ActionExit
	}
	return ActionContinue
}

// ScoreMoves evaluates every direction from b: unavailable moves keep the
// default zero, available ones get simCount rollouts from the post-move
// board, summed by metric. Each simulation runs on its own board clone
// with a seed drawn from rng up front, so the totals are identical
// whether the rollouts run sequentially or in parallel.
func ScoreMoves(b game.Board, simCount int, metric Metric, parallel bool, rng *rand.Rand) MoveScores {
	var scores MoveScores

	for _, m := range b.AvailableMoves() {
		seeds := make([]int64, simCount)
		for i := range seeds {
			seeds[i] = rng.Int63()
		}

		results := make([]int, simCount)
		if parallel {
			var wg sync.WaitGroup
			for i, seed := range seeds {
				wg.Add(1)
				go func(i int, seed int64) {
					defer wg.Done()
					results[i] = runSimulation(b, m, metric, seed)
				}(i, seed)
			}
			wg.Wait()
		} else {
			for i, seed := range seeds {
				results[i] = runSimulation(b, m, metric, seed)
			}
		}

		total := 0
		for _, r := range results {
			total += r
		}
		scores[m] = total
	}

	return scores
}

// runSimulation applies the move to a clone of b, plays it out randomly,
// and extracts the metric from the terminal board.
func runSimulation(b game.Board, m game.Move, metric Metric, seed int64) int {
	rng := rand.New(rand.NewSource(seed))
	sim := b
	sim.MakeMove(m, rng)
	terminal := Rollout(sim, rng)

	if metric == MetricMoves {
		return terminal.NumMoves()
	}
	return terminal.Score()
}
