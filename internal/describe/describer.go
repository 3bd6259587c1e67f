package describe

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/glyphspeak/internal/glyph"
)

// Describer owns the immutable lookup tables and answers description
// requests. It is safe for concurrent use.
type Describer struct {
	tables    *Tables
	quantizer *Quantizer
	plurals   map[string]string
}

// NewDescriber builds every lookup table for cat.
//
// Precondition: cat must be non-nil.
// Postcondition: Returns a ready Describer or an error if cat is invalid.
func NewDescriber(cat *glyph.Catalog, logger *zap.Logger) (*Describer, error) {
	if cat == nil {
		return nil, errors.New("catalog must not be nil")
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("building describer: %w", err)
	}
	tables := BuildTables(cat)
	nouns := tables.Nouns()
	d := &Describer{
		tables:    tables,
		quantizer: NewQuantizer(),
		plurals:   BuildPluralLookup(nouns),
	}
	logger.Info("describer ready",
		zap.Int("monsters", len(cat.Monsters)),
		zap.Int("objects", len(cat.Objects)),
		zap.Int("max_glyph", int(tables.Layout().MaxGlyph)),
		zap.Int("nouns", len(nouns)),
	)
	return d, nil
}

// Tables exposes the per-glyph nouns.
func (d *Describer) Tables() *Tables { return d.tables }

// Observe runs both scans and returns their raw observations, full-map
// first. An invalid grid or an out-of-window player yields nil.
func (d *Describer) Observe(grid Grid, blstats []int64) []Observation {
	player, ok := PlayerPosition(blstats)
	if !ok || !player.InBounds() || !grid.Valid() {
		return nil
	}
	obs := ScanFullscreen(d.tables, d.quantizer, grid, player)
	return append(obs, ScanVisual(d.tables, d.quantizer, grid, player)...)
}

// Groups returns the sorted and grouped observations for one snapshot.
func (d *Describer) Groups(grid Grid, blstats []int64) []Group {
	return GroupObservations(SortObservations(d.Observe(grid, blstats)), d.plurals)
}

// DescribeGlyphs renders what the player sees, one line per noun, distance
// and direction set.
//
// Postcondition: the same grid and blstats always yield identical bytes.
func (d *Describer) DescribeGlyphs(grid Grid, blstats []int64) []byte {
	return []byte(FormatGroups(d.Groups(grid, blstats)))
}

// DescribeCursor names the cell under the terminal cursor relative to the
// player. cursor is (terminal row, column); map row = terminal row - 1.
//
// Postcondition: returns empty output when the cursor or player lies outside
// the window.
func (d *Describer) DescribeCursor(grid Grid, blstats []int64, cursor [2]int64) []byte {
	player, ok := PlayerPosition(blstats)
	if !ok || !grid.Valid() {
		return nil
	}
	cell := Position{X: int(cursor[1]), Y: int(cursor[0]) - 1}
	if !cell.InBounds() {
		return nil
	}
	dx, dy := cell.X-player.X, player.Y-cell.Y
	qt, ok := d.quantizer.Lookup(dx, dy)
	if !ok {
		return nil
	}
	noun := d.tables.Fullscreen(grid.At(cell))
	if dx == 0 && dy == 0 {
		return []byte("Yourself a " + noun)
	}
	out := qt.Distance.String() + " " + string(qt.Direction)
	if noun != "" {
		out += " " + noun
	}
	return []byte(out)
}

// Plural returns the plural form of a catalog noun.
func (d *Describer) Plural(noun string) string {
	if p, ok := d.plurals[noun]; ok {
		return p
	}
	return Pluralize(noun)
}
