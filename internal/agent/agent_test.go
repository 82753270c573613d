package agent

import (
	"testing"

	"github.com/vovakirdan/twenty48/internal/game"
)

func TestMoveScoresBestTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		scores MoveScores
		want   game.Move
	}{
		{
			name:   "clear winner",
			scores: MoveScores{10, 40, 20, 30},
			want:   game.MoveDown,
		},
		{
			name:   "tie goes to earlier declared move",
			scores: MoveScores{50, 50, 50, 50},
			want:   game.MoveUp,
		},
		{
			name:   "partial tie",
			scores: MoveScores{10, 30, 30, 20},
			want:   game.MoveDown,
		},
		{
			name:   "all zero",
			scores: MoveScores{0, 0, 0, 0},
			want:   game.MoveUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Repeated calls must always agree.
			for i := 0; i < 5; i++ {
				if got := tt.scores.Best(); got != tt.want {
					t.Fatalf("Best() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMoveScoresBestOfIgnoresUnavailable(t *testing.T) {
	// Down has the globally highest score but is not a candidate, so the
	// default zero of an unavailable move must never win.
	scores := MoveScores{0, 999, 3, 7}
	avail := []game.Move{game.MoveLeft, game.MoveRight}

	if got := scores.BestOf(avail); got != game.MoveRight {
		t.Errorf("BestOf = %v, want Right", got)
	}
}

func TestMoveScoresBestOfEmptyFallsBack(t *testing.T) {
	scores := MoveScores{1, 2, 3, 4}
	if got := scores.BestOf(nil); got != game.MoveRight {
		t.Errorf("BestOf(nil) = %v, want Right", got)
	}
}

func TestUserAgentHandleKey(t *testing.T) {
	b := game.Empty()
	b.SetTile(0, 0, 1)
	b.SetTile(1, 0, 1)

	a := NewUserAgent(b, 1)

	if got := a.HandleKey(KeyLeft); got != ActionContinue {
		t.Fatalf("HandleKey(Left) = %v, want Continue", got)
	}
	if a.Game().NumMoves() != 1 {
		t.Errorf("NumMoves = %d, want 1 after committed key", a.Game().NumMoves())
	}
	if a.Game().Score() != 4 {
		t.Errorf("Score = %d, want 4 after merge", a.Game().Score())
	}

	if got := a.HandleKey(KeyQuit); got != ActionExit {
		t.Errorf("HandleKey(Quit) = %v, want Exit", got)
	}
}

func TestUserAgentIgnoresUnknownKeys(t *testing.T) {
	a := NewUserAgent(game.Empty(), 1)
	before := *a.Game()

	if got := a.HandleKey(KeyUnknown); got != ActionContinue {
		t.Errorf("unknown key = %v, want Continue (not Exit)", got)
	}
	if *a.Game() != before {
		t.Error("unknown key must not change the board")
	}
}
