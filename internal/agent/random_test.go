package agent

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/twenty48/internal/game"
)

func TestRolloutReachesTerminalState(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	start := game.New(rng)

	terminal := Rollout(start, rng)

	if !terminal.GameOver() {
		t.Error("Rollout must return a terminal board")
	}
	if terminal.NumMoves() == 0 {
		t.Error("a rollout from an opening board should survive at least one move")
	}
	if terminal.Score() == 0 {
		t.Error("a full random game should merge at least once")
	}
}

func TestRolloutDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	start := game.New(rng)
	before := start

	Rollout(start, rng)

	if start != before {
		t.Error("Rollout must operate on its own copy of the board")
	}
}

func TestRolloutIsDeterministicWithSeed(t *testing.T) {
	start := game.New(rand.New(rand.NewSource(3)))

	t1 := Rollout(start, rand.New(rand.NewSource(99)))
	t2 := Rollout(start, rand.New(rand.NewSource(99)))

	if t1 != t2 {
		t.Errorf("seeded rollouts diverged: score %d vs %d", t1.Score(), t2.Score())
	}
}

func TestRandomAgentPlaysToCompletion(t *testing.T) {
	a := NewRandomAgent(game.New(rand.New(rand.NewSource(4))), 4)

	for i := 0; i < 100000 && !a.Game().GameOver(); i++ {
		a.MakeMove()
	}

	if !a.Game().GameOver() {
		t.Fatal("random agent did not finish a game")
	}
}
