package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twenty48/internal/agent"
	"github.com/vovakirdan/twenty48/internal/game"
)

const tileWidth = 7

var (
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tileColor returns the background color for a tile value, following the
// classic 2048 palette.
func tileColor(value int) lipgloss.Color {
	switch value {
	case 2:
		return lipgloss.Color("#eee4da")
	case 4:
		return lipgloss.Color("#ede0c8")
	case 8:
		return lipgloss.Color("#f2b179")
	case 16:
		return lipgloss.Color("#f59563")
	case 32:
		return lipgloss.Color("#f67c5f")
	case 64:
		return lipgloss.Color("#f65e3b")
	case 128:
		return lipgloss.Color("#edcf72")
	case 256:
		return lipgloss.Color("#edcc61")
	case 512:
		return lipgloss.Color("#edc850")
	case 1024:
		return lipgloss.Color("#edc53f")
	case 2048:
		return lipgloss.Color("#edc22e")
	case 4096:
		return lipgloss.Color("#adb777")
	case 8192:
		return lipgloss.Color("#aab766")
	case 16384:
		return lipgloss.Color("#a6b755")
	case 32768:
		return lipgloss.Color("#a3b744")
	case 65536:
		return lipgloss.Color("#a0b733")
	default:
		return lipgloss.Color("240")
	}
}

// RenderBoard renders the 4x4 grid with colored tiles.
func RenderBoard(b *game.Board) string {
	values := b.Values()

	var rows []string
	for y := 0; y < game.BoardSize; y++ {
		cells := make([]string, 0, game.BoardSize)
		for x := 0; x < game.BoardSize; x++ {
			v := values[y][x]
			if v == 0 {
				cells = append(cells, emptyTileStyle.Render("."))
				continue
			}
			style := lipgloss.NewStyle().
				Width(tileWidth).
				Align(lipgloss.Center).
				Background(tileColor(v)).
				Foreground(lipgloss.Color("235")).
				Bold(true)
			cells = append(cells, style.Render(fmt.Sprintf("%d", v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(strings.Join(rows, "\n\n"))
}

// RenderHUD renders the score line above the board.
func RenderHUD(b *game.Board) string {
	return hudStyle.Render(fmt.Sprintf("Score: %d   Moves: %d   Best tile: %d",
		b.Score(), b.NumMoves(), b.MaxTile()))
}

// RenderMessages renders the agent's status panel.
func RenderMessages(msgs []agent.Message) string {
	if len(msgs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, msg := range msgs {
		if msg.Highlight {
			b.WriteString(highlightStyle.Render(msg.Text))
		} else {
			b.WriteString(messageStyle.Render(msg.Text))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
