package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const bigStep = 8

var moves = map[string][2]int{
	"up":    {-1, 0},
	"k":     {-1, 0},
	"down":  {1, 0},
	"j":     {1, 0},
	"left":  {0, -1},
	"h":     {0, -1},
	"right": {0, 1},
	"l":     {0, 1},
	"y":     {-1, -1},
	"u":     {-1, 1},
	"b":     {1, -1},
	"n":     {1, 1},
	"K":     {-bigStep, 0},
	"J":     {bigStep, 0},
	"H":     {0, -bigStep},
	"L":     {0, bigStep},
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "@", "home":
		m.jumpToPlayer()
		m.clamp()
		return m, nil
	}
	if d, ok := moves[key]; ok {
		m.move(d[0], d[1])
	}
	return m, nil
}
