// Package ui is the terminal model of the observation explorer.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cory-johannsen/glyphspeak/internal/describe"
	"github.com/cory-johannsen/glyphspeak/internal/observation"
	"github.com/cory-johannsen/glyphspeak/internal/translate"
)

// Terminal rows: the message line, the map window, then two status lines.
const (
	ScreenRows = describe.Height + 3
	ScreenCols = describe.Width + 1
)

// Model holds one observation and the explorer cursor in terminal
// coordinates.
type Model struct {
	tr     *translate.Translator
	obs    *observation.Observation
	row    int
	col    int
	width  int
	height int
	// glyphs is rendered once; it does not depend on the cursor.
	glyphs  string
	message string
}

// NewModel places the cursor on the observation's terminal cursor, or on the
// player when the observation has none.
//
// Precondition: tr and obs must be non-nil.
func NewModel(tr *translate.Translator, obs *observation.Observation) Model {
	m := Model{
		tr:      tr,
		obs:     obs,
		glyphs:  tr.Glyphs(obs),
		message: tr.Message(obs),
	}
	switch {
	case obs.HasCursor:
		m.row, m.col = int(obs.Cursor[0]), int(obs.Cursor[1])
	default:
		m.jumpToPlayer()
	}
	m.clamp()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the explorer cursor as (terminal row, column).
func (m Model) Cursor() (row, col int) {
	return m.row, m.col
}

// CursorText describes the cell under the explorer cursor.
func (m Model) CursorText() string {
	return string(m.tr.Describer().DescribeCursor(m.obs.Grid, m.obs.Blstats, [2]int64{int64(m.row), int64(m.col)}))
}

func (m *Model) jumpToPlayer() {
	if p, ok := describe.PlayerPosition(m.obs.Blstats); ok {
		m.row, m.col = p.Y+1, p.X
	}
}

func (m *Model) move(dRow, dCol int) {
	m.row += dRow
	m.col += dCol
	m.clamp()
}

// clamp keeps the cursor inside the map window.
func (m *Model) clamp() {
	m.row = min(max(m.row, 1), describe.Height)
	m.col = min(max(m.col, 0), describe.Width-1)
}
