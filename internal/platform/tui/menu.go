package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twenty48/internal/registry"
)

// MenuModel lets the user pick which agent plays the game.
type MenuModel struct {
	agents          []registry.AgentInfo
	cursor          int
	width           int
	height          int
	keyMapper       *KeyMapper
	selected        string
	wantsScoreboard bool
	choosing        bool
	quitting        bool
}

// NewMenuModel creates a new agent selection model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		agents:    registry.List(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionScoreboard:
		m.wantsScoreboard = true
		m.choosing = false
		return m, tea.Quit
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.agents)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.agents) > 0 {
			m.selected = m.agents[m.cursor].ID
			m.choosing = false
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the agent selection.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Who plays?", m.width))
	b.WriteString("\n\n")

	for i, a := range m.agents {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, a.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  T: Scores  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen agent ID, or empty while still choosing.
func (m MenuModel) Selected() string {
	if m.choosing {
		return ""
	}
	return m.selected
}

// WantsScoreboard returns true if the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantsScoreboard
}

// IsQuitting returns true if the user wants to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// MenuResult holds the outcome of running the menu.
type MenuResult struct {
	AgentID         string
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the agent picker and returns the user's choice.
func RunMenu(width, height int) (MenuResult, error) {
	model := NewMenuModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() {
		return MenuResult{Quit: true}, nil
	}

	return MenuResult{
		AgentID:         m.Selected(),
		WantsScoreboard: m.WantsScoreboard(),
	}, nil
}
