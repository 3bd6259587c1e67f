// Package describe turns a rendered map snapshot into short prose: what the
// player sees, how far away it is and in which compass direction.
package describe

import (
	"fmt"

	"github.com/cory-johannsen/glyphspeak/internal/glyph"
)

// Dimensions of the map window.
const (
	Width  = 79
	Height = 21
	// MaxRayLength is the number of cells a line-of-sight ray inspects.
	MaxRayLength = 9
)

// Position is a map cell, x from the left edge and y from the top row.
type Position struct {
	X int
	Y int
}

// InBounds reports whether p lies inside the map window.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Grid is a row-major map snapshot of Width*Height glyph codes.
type Grid []glyph.Glyph

// NewGrid returns a grid with every cell set to fill.
func NewGrid(fill glyph.Glyph) Grid {
	g := make(Grid, Width*Height)
	for i := range g {
		g[i] = fill
	}
	return g
}

// GridFromRows builds a grid from Height rows of Width codes each.
//
// Precondition: rows must have exactly Height rows of exactly Width codes.
// Postcondition: Returns a Grid or an error naming the first malformed row.
func GridFromRows(rows [][]int64) (Grid, error) {
	if len(rows) != Height {
		return nil, fmt.Errorf("grid has %d rows, want %d", len(rows), Height)
	}
	g := make(Grid, 0, Width*Height)
	for y, row := range rows {
		if len(row) != Width {
			return nil, fmt.Errorf("grid row %d has %d columns, want %d", y, len(row), Width)
		}
		for _, code := range row {
			g = append(g, glyph.Glyph(code))
		}
	}
	return g, nil
}

// GridFromFlat builds a grid from Width*Height row-major codes.
func GridFromFlat(codes []int64) (Grid, error) {
	if len(codes) != Width*Height {
		return nil, fmt.Errorf("grid has %d cells, want %d", len(codes), Width*Height)
	}
	g := make(Grid, len(codes))
	for i, code := range codes {
		g[i] = glyph.Glyph(code)
	}
	return g, nil
}

// Valid reports whether the grid has the full window size.
func (g Grid) Valid() bool {
	return len(g) == Width*Height
}

// At returns the glyph at p.
//
// Precondition: g is Valid and p is InBounds.
func (g Grid) At(p Position) glyph.Glyph {
	return g[p.Y*Width+p.X]
}

// Set stores code at p.
//
// Precondition: g is Valid and p is InBounds.
func (g Grid) Set(p Position, code glyph.Glyph) {
	g[p.Y*Width+p.X] = code
}

// PlayerPosition reads the player's cell from the status vector.
//
// Postcondition: ok is false when the vector is too short.
func PlayerPosition(blstats []int64) (Position, bool) {
	if len(blstats) < 2 {
		return Position{}, false
	}
	return Position{X: int(blstats[0]), Y: int(blstats[1])}, true
}
