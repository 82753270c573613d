package tui

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twenty48/internal/agent"
	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
	"github.com/vovakirdan/twenty48/internal/registry"
	"github.com/vovakirdan/twenty48/internal/storage"
)

// moveDoneMsg signals that an autonomous agent finished computing and
// applying its next move.
type moveDoneMsg struct{}

// GameOptions configures a game session.
type GameOptions struct {
	// AgentID names the registered agent driving the board.
	AgentID string

	// Config holds the agent tuning knobs.
	Config config.Config

	// Seed makes the run reproducible. Zero picks a time-based seed.
	Seed int64

	// Delay is the pause between autonomous agent moves, so a human can
	// follow the game. Ignored for keyboard play.
	Delay time.Duration
}

// viewState is the render snapshot of the agent. View and handleKey read
// only this copy, never the agent itself, so a think command can mutate
// the agent on its own goroutine without racing the render path.
type viewState struct {
	board game.Board
	msgs  []agent.Message
	over  bool
}

// Model is the Bubble Tea model for one game session. It drives any
// registered agent: keyboard play commits moves per keypress, search
// agents think inside a command so the UI stays responsive.
//
// The agent is touched from exactly one goroutine at a time: either the
// in-flight think command, or Update after that command's message has
// been delivered. Everything the render path needs lives in the view
// snapshot, refreshed on the program goroutine.
type Model struct {
	opts      GameOptions
	ag        agent.Agent
	store     *storage.Store
	keyMapper *KeyMapper
	view      viewState
	width     int
	height    int
	auto      bool // Agent moves by itself (everything except keyboard play)
	thinking  bool
	runSaved  bool
	quitting  bool
	back      bool
}

// NewModel creates a model for the given agent session.
func NewModel(opts GameOptions, store *storage.Store) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	board := game.New(rand.New(rand.NewSource(opts.Seed)))
	ag, err := registry.Create(opts.AgentID, board, opts.Config, opts.Seed)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		opts:      opts,
		ag:        ag,
		store:     store,
		keyMapper: NewKeyMapper(),
		auto:      opts.AgentID != "user",
	}
	m.refreshView()

	return m, nil
}

// refreshView copies the agent's board and messages into the render
// snapshot. Must only be called on the program goroutine, and never
// while a think command is in flight.
func (m *Model) refreshView() {
	g := m.ag.Game()
	m.view.board = *g
	m.view.over = g.GameOver()
	m.view.msgs = nil
	if ia, ok := m.ag.(agent.Interactive); ok {
		m.view.msgs = ia.Messages()
	}
}

// Init starts the agent loop for autonomous agents.
func (m Model) Init() tea.Cmd {
	if m.auto {
		return m.moveCmd()
	}
	return nil
}

// moveCmd computes and applies one agent move off the update loop. The
// command publishes nothing itself: Update reads the result back into
// the view snapshot when moveDoneMsg arrives, which happens only after
// the command has returned.
func (m Model) moveCmd() tea.Cmd {
	ag := m.ag
	delay := m.opts.Delay
	return func() tea.Msg {
		ag.MakeMove()
		if delay > 0 {
			time.Sleep(delay)
		}
		return moveDoneMsg{}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case moveDoneMsg:
		m.thinking = false
		m.refreshView()
		return m.afterMove()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Restart and back only make sense once the game ended. The snapshot
	// only shows a terminal board when no think command is in flight, so
	// restarting here never abandons a running command.
	if m.view.over {
		switch msg.String() {
		case "r":
			return m.restart()
		case "b", "esc":
			m.back = true
			return m, tea.Quit
		}
	}

	key := m.keyMapper.MapKey(msg)

	if m.auto {
		// Autonomous agents only listen for quit.
		if key == agent.KeyQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	ia, ok := m.ag.(agent.Interactive)
	if !ok {
		return m, nil
	}

	if ia.HandleKey(key) == agent.ActionExit {
		m.quitting = true
		return m, tea.Quit
	}

	m.refreshView()
	return m.afterMove()
}

// afterMove saves the run once the game ends, or keeps the agent loop
// going. Expects a fresh view snapshot.
func (m Model) afterMove() (tea.Model, tea.Cmd) {
	if m.view.over {
		if !m.runSaved && m.view.board.Score() > 0 {
			if m.store != nil {
				//nolint:errcheck // Best-effort save, session continues regardless
				m.store.SaveRun(m.opts.AgentID,
					m.view.board.Score(), m.view.board.NumMoves(), m.view.board.MaxTile())
			}
			m.runSaved = true
		}
		return m, nil
	}

	if m.auto && !m.thinking {
		m.thinking = true
		return m, m.moveCmd()
	}

	return m, nil
}

// restart begins a fresh game with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.opts.Seed = time.Now().UnixNano()

	board := game.New(rand.New(rand.NewSource(m.opts.Seed)))
	ag, err := registry.Create(m.opts.AgentID, board, m.opts.Config, m.opts.Seed)
	if err != nil {
		// Cannot happen for an agent that was already created once.
		m.quitting = true
		return m, tea.Quit
	}

	m.ag = ag
	m.runSaved = false
	m.thinking = false
	m.refreshView()

	return m, m.Init()
}

// View renders the current game state from the snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(RenderHUD(&m.view.board))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(&m.view.board))
	b.WriteString("\n")

	if panel := RenderMessages(m.view.msgs); panel != "" {
		b.WriteString("\n")
		b.WriteString(panel)
		b.WriteString("\n")
	}

	if m.view.over {
		b.WriteString("\n")
		b.WriteString(gameOverStyle.Render("GAME OVER"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r: restart  |  b/esc: back  |  q: quit"))
	} else if m.auto {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q: quit"))
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("arrows/wasd: move  |  q: quit"))
	}

	return b.String()
}

// IsQuitting returns true if the user wants to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for one game session.
func Run(opts GameOptions, store *storage.Store) error {
	model, err := NewModel(opts, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
