package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func (m Model) View() string {
	panel := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("cursor (%d, %d)", m.row, m.col)),
		textStyle.Render(orNone(m.CursorText())),
		"",
		titleStyle.Render("message"),
		textStyle.Render(orNone(m.message)),
		"",
		titleStyle.Render("in view"),
		textStyle.Render(orNone(m.glyphs)),
	)

	if w := m.width - ScreenCols - 4; m.width > 0 && w >= 20 {
		panel = lipgloss.NewStyle().Width(w).Render(panel)
	}

	help := helpStyle.Render("arrows/hjklyubn move  HJKL jump  @ player  q quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, screenStyle.Render(m.screen()), "  ", panel),
		help,
	)
}

// screen renders the terminal rows with the cursor cell highlighted.
func (m Model) screen() string {
	var b strings.Builder
	for r := 0; r < ScreenRows; r++ {
		line := make([]byte, ScreenCols)
		for c := range line {
			line[c] = ' '
		}
		if r < len(m.obs.TTYChars) {
			for c, ch := range m.obs.TTYChars[r] {
				if c >= ScreenCols {
					break
				}
				if ch >= 0x20 && ch < 0x7f {
					line[c] = ch
				}
			}
		}
		if r == m.row {
			b.WriteString(string(line[:m.col]))
			b.WriteString(cursorStyle.Render(string(line[m.col])))
			b.WriteString(string(line[m.col+1:]))
		} else {
			b.Write(line)
		}
		if r < ScreenRows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "(nothing)"
	}
	return s
}
