package agent

import (
	"math/rand"

	"github.com/vovakirdan/twenty48/internal/game"
)

// RandomAgent plays a uniformly random direction each turn. Ineffective
// moves simply no-op; the game still ends because the board keeps filling
// on every effective move.
type RandomAgent struct {
	game game.Board
	rng  *rand.Rand
}

// NewRandomAgent creates a random agent owning the given board.
func NewRandomAgent(b game.Board, seed int64) *RandomAgent {
	return &RandomAgent{
		game: b,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Game returns the owned board.
func (a *RandomAgent) Game() *game.Board {
	return &a.game
}

// NextMove draws a uniformly random direction.
func (a *RandomAgent) NextMove() game.Move {
	return game.Moves[a.rng.Intn(len(game.Moves))]
}

// MakeMove applies a random direction to the owned board.
func (a *RandomAgent) MakeMove() {
	a.game.MakeMove(a.NextMove(), a.rng)
}

// Messages describes the agent for the front-end.
func (a *RandomAgent) Messages() []Message {
	return []Message{{Text: "Performing random moves."}}
}

// HandleKey ignores everything except quit.
func (a *RandomAgent) HandleKey(k Key) InputAction {
	if k == KeyQuit {
		return ActionExit
	}
	return ActionContinue
}

// Rollout plays the board to completion with uniformly random moves and
// returns the terminal board. The input is taken by value, so the
// caller's board is never touched.
func Rollout(b game.Board, rng *rand.Rand) game.Board {
	for !b.GameOver() {
		b.MakeMove(game.Moves[rng.Intn(len(game.Moves))], rng)
	}
	return b
}
