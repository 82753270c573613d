package agent

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
)

func expectimaxConfig() config.ExpectimaxConfig {
	return config.ExpectimaxConfig{
		Depth:         2,
		SampleTiles:   3,
		HeuristicSims: 2,
		MaxEvals:      200,
		WeightEmpty:   true,
	}
}

func TestExpectimaxPicksAvailableMove(t *testing.T) {
	a := NewExpectimax(topAlignedBoard(), expectimaxConfig(), 1)

	m := a.NextMove()
	if m == game.MoveUp {
		t.Error("NextMove picked the unavailable Up move")
	}
}

func TestExpectimaxRespectsEvalBudget(t *testing.T) {
	cfg := expectimaxConfig()
	cfg.Depth = 6
	cfg.MaxEvals = 50

	a := NewExpectimax(game.New(rand.New(rand.NewSource(2))), cfg, 2)
	a.NextMove()

	// The counter may overshoot only by the branches in flight when the
	// budget ran out: at most one per top-level direction.
	limit := int64(cfg.MaxEvals) + int64(len(game.Moves))
	if got := a.Evals(); got > limit {
		t.Errorf("evaluations = %d, want <= %d", got, limit)
	}
	if a.Evals() == 0 {
		t.Error("search did not expand any node")
	}
}

func TestExpectimaxSeededGamesAreIdentical(t *testing.T) {
	start := game.New(rand.New(rand.NewSource(3)))

	a1 := NewExpectimax(start, expectimaxConfig(), 11)
	a2 := NewExpectimax(start, expectimaxConfig(), 11)

	for i := 0; i < 5; i++ {
		a1.MakeMove()
		a2.MakeMove()
	}

	if *a1.Game() != *a2.Game() {
		t.Errorf("same-seed searches diverged:\n%v\nvs\n%v",
			a1.Game().Values(), a2.Game().Values())
	}
}

func TestExpectimaxNextMoveDoesNotMutateBoard(t *testing.T) {
	a := NewExpectimax(game.New(rand.New(rand.NewSource(4))), expectimaxConfig(), 4)
	before := *a.Game()

	a.NextMove()

	if *a.Game() != before {
		t.Error("NextMove must not mutate the owned board")
	}
}

func TestExpectimaxOnTerminalBoard(t *testing.T) {
	b := game.Empty()
	exps := [4][4]uint8{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}
	for y := range 4 {
		for x := range 4 {
			b.SetTile(x, y, exps[y][x])
		}
	}
	if !b.GameOver() {
		t.Fatal("expected terminal board")
	}

	a := NewExpectimax(b, expectimaxConfig(), 5)
	before := *a.Game()

	// Must neither panic nor alter the board.
	a.MakeMove()

	if *a.Game() != before {
		t.Error("MakeMove on a terminal board must be a no-op")
	}
}

func TestExpectimaxSanitizesConfig(t *testing.T) {
	// Zero values would divide by zero in the heuristic; the constructor
	// clamps them instead.
	a := NewExpectimax(game.New(rand.New(rand.NewSource(6))), config.ExpectimaxConfig{}, 6)
	a.NextMove()
}
