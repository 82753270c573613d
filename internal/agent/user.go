package agent

import (
	"math/rand"

	"github.com/vovakirdan/twenty48/internal/game"
)

// UserAgent lets a human play: moves arrive through HandleKey and commit
// synchronously. MakeMove is a no-op because the tick loop has nothing to
// decide for a human.
type UserAgent struct {
	game game.Board
	rng  *rand.Rand
}

// NewUserAgent creates a keyboard-driven agent owning the given board.
func NewUserAgent(b game.Board, seed int64) *UserAgent {
	return &UserAgent{
		game: b,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Game returns the owned board.
func (a *UserAgent) Game() *game.Board {
	return &a.game
}

// NextMove returns the first available direction. Only autoplay drivers
// call this; interactive play goes through HandleKey.
func (a *UserAgent) NextMove() game.Move {
	if avail := a.game.AvailableMoves(); len(avail) > 0 {
		return avail[0]
	}
	return game.Moves[0]
}

// MakeMove does nothing; the human decides via HandleKey.
func (a *UserAgent) MakeMove() {}

// Messages shows the controls.
func (a *UserAgent) Messages() []Message {
	return []Message{{Text: "Use WASD or arrow keys to move."}}
}

// HandleKey commits a recognized direction to the board. Quit exits;
// anything else is ignored rather than treated as an exit.
func (a *UserAgent) HandleKey(k Key) InputAction {
	var m game.Move
	switch k {
	case KeyQuit:
		return ActionExit
	case KeyUp:
		m = game.MoveUp
	case KeyDown:
		m = game.MoveDown
	case KeyLeft:
		m = game.MoveLeft
	case KeyRight:
		m = game.MoveRight
	default:
		return ActionContinue
	}

	a.game.MakeMove(m, a.rng)
	return ActionContinue
}
