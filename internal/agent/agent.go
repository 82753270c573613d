// Package agent contains the decision layers that play 2048: a uniform
// random player, a Monte-Carlo rollout evaluator, a depth-limited expectimax
// search, and a keyboard-driven agent. Every agent owns its board; the
// platform drives them all through the same small interface.
package agent

import "github.com/vovakirdan/twenty48/internal/game"

// Agent is the contract the platform uses to drive any player.
type Agent interface {
	// Game returns the agent's owned board for rendering.
	Game() *game.Board

	// NextMove picks the move the agent would make, without mutating
	// the board.
	NextMove() game.Move

	// MakeMove commits NextMove's result to the owned board.
	MakeMove()
}

// Message is one displayable status line. Highlight marks the line the
// front-end should emphasize (typically the best-scoring move).
type Message struct {
	Text      string
	Highlight bool
}

// Key is a recognized input, already translated from raw terminal events
// by the platform layer.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// InputAction is an interactive agent's response to a key.
type InputAction int

const (
	ActionContinue InputAction = iota
	ActionExit
)

// Interactive is the optional capability for agents that talk to the
// terminal front-end: status lines to display and, for keyboard play,
// input handling. Unrecognized keys are ignored, never treated as quit.
type Interactive interface {
	Agent
	Messages() []Message
	HandleKey(Key) InputAction
}

// MoveScores maps each direction to a score, indexed by game.Move.
type MoveScores [4]int

// Best returns the highest-scoring move. Ties go to the earlier-declared
// direction, so repeated calls always agree.
func (s MoveScores) Best() game.Move {
	best := game.Moves[0]
	for _, m := range game.Moves[1:] {
		if s[m] > s[best] {
			best = m
		}
	}
	return best
}

// BestOf returns the highest-scoring move among the given candidates,
// with the same tie-break as Best. An unavailable move can therefore
// never win on its default zero score. Falls back to Best when the
// candidate set is empty.
func (s MoveScores) BestOf(moves []game.Move) game.Move {
	if len(moves) == 0 {
		return s.Best()
	}
	best := moves[0]
	for _, m := range moves[1:] {
		if s[m] > s[best] {
			best = m
		}
	}
	return best
}
