package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
)

func rolloutOptions() GameOptions {
	cfg := config.Default()
	cfg.RandomTree.SimCount = 200

	return GameOptions{
		AgentID: "rollout",
		Config:  cfg,
		Seed:    1,
	}
}

func TestModelViewSafeWhileAgentThinks(t *testing.T) {
	// Render continuously while a think command mutates the agent on its
	// own goroutine. View must only touch the snapshot, so this stays
	// clean under the race detector.
	m, err := NewModel(rolloutOptions(), nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}

	cmd := m.moveCmd()
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	for {
		select {
		case msg := <-done:
			next, _ := m.Update(msg)
			m = next.(Model)
			if m.view.board.NumMoves() != 1 {
				t.Errorf("NumMoves = %d, want 1 after committed move", m.view.board.NumMoves())
			}
			return
		default:
			_ = m.View()
		}
	}
}

func TestModelSnapshotTracksAgentMoves(t *testing.T) {
	m, err := NewModel(rolloutOptions(), nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}

	before := m.view.board

	for i := 0; i < 3; i++ {
		cmd := m.moveCmd()
		next, _ := m.Update(cmd())
		m = next.(Model)
	}

	if m.view.board.NumMoves() != 3 {
		t.Errorf("snapshot NumMoves = %d, want 3", m.view.board.NumMoves())
	}
	if m.view.board.SameCells(before) {
		t.Error("snapshot board did not advance with the agent")
	}
	if len(m.view.msgs) == 0 {
		t.Error("snapshot should carry the agent's status messages")
	}
}

func TestModelCommitsUserKey(t *testing.T) {
	m, err := NewModel(GameOptions{AgentID: "user", Config: config.Default(), Seed: 2}, nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}

	keyFor := map[game.Move]tea.KeyMsg{
		game.MoveUp:    {Type: tea.KeyUp},
		game.MoveDown:  {Type: tea.KeyDown},
		game.MoveLeft:  {Type: tea.KeyLeft},
		game.MoveRight: {Type: tea.KeyRight},
	}

	avail := m.view.board.AvailableMoves()
	if len(avail) == 0 {
		t.Fatal("opening board must have available moves")
	}

	next, _ := m.Update(keyFor[avail[0]])
	m = next.(Model)

	if m.view.board.NumMoves() != 1 {
		t.Errorf("snapshot NumMoves = %d, want 1 after keypress", m.view.board.NumMoves())
	}
}

func TestModelQuitKey(t *testing.T) {
	m, err := NewModel(rolloutOptions(), nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)

	if !m.IsQuitting() {
		t.Error("q should quit an autonomous session")
	}
	if cmd == nil {
		t.Error("quit should return the tea.Quit command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}
