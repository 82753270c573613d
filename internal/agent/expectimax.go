package agent

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
)

// Expectimax looks ahead by alternating a MAX layer over the player's
// moves with a CHANCE layer over sampled tile spawns, bounded by depth
// and a shared evaluation budget, with random rollouts as the leaf
// heuristic. Branches run on cloned boards; the atomic evaluation
// counter is the only state shared across goroutines.
type Expectimax struct {
	game game.Board
	rng  *rand.Rand
	cfg  config.ExpectimaxConfig

	evals atomic.Int64

	lastScores MoveScores
	lastAvail  []game.Move
	lastEvals  int64
}

// NewExpectimax creates an expectimax agent owning the given board.
func NewExpectimax(b game.Board, cfg config.ExpectimaxConfig, seed int64) *Expectimax {
	if cfg.Depth < 1 {
		cfg.Depth = 1
	}
	if cfg.SampleTiles < 1 {
		cfg.SampleTiles = 1
	}
	if cfg.HeuristicSims < 1 {
		cfg.HeuristicSims = 1
	}
	if cfg.MaxEvals < 1 {
		cfg.MaxEvals = 1
	}
	return &Expectimax{
		game: b,
		rng:  rand.New(rand.NewSource(seed)),
		cfg:  cfg,
	}
}

// Game returns the owned board.
func (a *Expectimax) Game() *game.Board {
	return &a.game
}

// NextMove runs a full search and returns the best available move.
func (a *Expectimax) NextMove() game.Move {
	avail := a.game.AvailableMoves()
	scores := a.scoreMoves()

	a.lastScores = scores
	a.lastAvail = avail

	return scores.BestOf(avail)
}

// MakeMove commits the searched move, triggering the real tile spawn.
func (a *Expectimax) MakeMove() {
	a.game.MakeMove(a.NextMove(), a.rng)
}

// scoreMoves evaluates the four directions, resetting the evaluation
// budget once per decision. Branch seeds are drawn from the agent's rng
// before the fan-out and results land by index, so a seeded search is
// reproducible even though the branches run concurrently.
func (a *Expectimax) scoreMoves() MoveScores {
	a.evals.Store(0)

	avail := a.game.AvailableMoves()
	results := make([]float64, len(avail))

	var wg sync.WaitGroup
	for i, m := range avail {
		seed := a.rng.Int63()
		wg.Add(1)
		go func(i int, m game.Move, seed int64) {
			defer wg.Done()
			branch := rand.New(rand.NewSource(seed))
			results[i] = a.chance(a.game.Shift(m), 0, branch)
		}(i, m, seed)
	}
	wg.Wait()

	// Scores stay floating point through the search and are truncated
	// only here, at the point of comparison.
	var scores MoveScores
	for i, m := range avail {
		scores[m] = int(results[i])
	}

	a.lastEvals = a.evals.Load()
	return scores
}

// chance is the CHANCE layer: an expectation over sampled spawn outcomes.
// Budget, depth, or a terminal board short-circuit to the heuristic.
func (a *Expectimax) chance(b game.Board, depth int, rng *rand.Rand) float64 {
	if a.evals.Load() >= int64(a.cfg.MaxEvals) || depth >= a.cfg.Depth || b.GameOver() {
		return a.heuristic(b, rng)
	}

	empty := b.EmptyCells()
	if len(empty) == 0 {
		// No room to spawn: the only outcome is the board itself,
		// weight 1.0.
		return a.best(b, depth, rng)
	}

	// Shuffle before truncating so the sample carries no positional bias.
	rng.Shuffle(len(empty), func(i, j int) {
		empty[i], empty[j] = empty[j], empty[i]
	})
	if len(empty) > a.cfg.SampleTiles {
		empty = empty[:a.cfg.SampleTiles]
	}

	total := 0.0
	for _, idx := range empty {
		x, y := idx%game.BoardSize, idx/game.BoardSize

		small := b
		small.SetTile(x, y, 1)
		big := b
		big.SetTile(x, y, 2)

		total += (1-game.SpawnBigProb)*a.best(small, depth, rng) +
			game.SpawnBigProb*a.best(big, depth, rng)
	}

	return total / float64(len(empty))
}

// best is the MAX layer: the highest chance-value over available moves.
// Each expansion charges the shared budget before recursing.
func (a *Expectimax) best(b game.Board, depth int, rng *rand.Rand) float64 {
	avail := b.AvailableMoves()
	if len(avail) == 0 {
		return a.heuristic(b, rng)
	}

	bestScore := math.Inf(-1)
	for _, m := range avail {
		// Check before charging: once the budget is gone, the counter
		// may overshoot only by the branches already in flight.
		if a.evals.Load() >= int64(a.cfg.MaxEvals) {
			break
		}
		a.evals.Add(1)
		if s := a.chance(b.Shift(m), depth+1, rng); s > bestScore {
			bestScore = s
		}
	}
	if math.IsInf(bestScore, -1) {
		return a.heuristic(b, rng)
	}
	return bestScore
}

// heuristic estimates a board by averaging random rollouts, optionally
// scaled by the number of open cells.
func (a *Expectimax) heuristic(b game.Board, rng *rand.Rand) float64 {
	total := 0
	for range a.cfg.HeuristicSims {
		total += Rollout(b, rng).Score()
	}
	avg := float64(total) / float64(a.cfg.HeuristicSims)

	if a.cfg.WeightEmpty {
		if open := len(b.EmptyCells()); open > 0 {
			avg *= float64(open)
		}
	}
	return avg
}

// Evals returns how many nodes the last decision expanded.
func (a *Expectimax) Evals() int64 {
	return a.lastEvals
}

// Messages reports the last decision's scores and parameters.
func (a *Expectimax) Messages() []Message {
	msgs := []Message{
		{Text: "Expectimax search", Highlight: true},
		{Text: fmt.Sprintf(
			"Depth %d, %d sampled spawns per layer, %d leaf rollouts, budget %d evals (used %d).",
			a.cfg.Depth, a.cfg.SampleTiles, a.cfg.HeuristicSims, a.cfg.MaxEvals, a.lastEvals)},
		{Text: ""},
	}

	best := a.lastScores.BestOf(a.lastAvail)
	for _, m := range game.Moves {
		msgs = append(msgs, Message{
			Text:      fmt.Sprintf("%s: %d", m, a.lastScores[m]),
			Highlight: m == best && len(a.lastAvail) > 0,
		})
	}
	return msgs
}

// HandleKey ignores everything except quit.
func (a *Expectimax) HandleKey(k Key) InputAction {
	if k == KeyQuit {
		return ActionExit
	}
	return ActionContinue
}
