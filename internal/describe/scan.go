package describe

// Observation is one sighting: what, how far and which way.
type Observation struct {
	Noun      string
	Distance  Distance
	Direction Direction
}

// ray is a unit step for a line-of-sight ray; y grows downward.
type ray struct {
	dx, dy int
}

// Rays in scan order: east, then clockwise.
var rays = [8]ray{
	{1, 0},   // east
	{1, 1},   // southeast
	{0, 1},   // south
	{-1, 1},  // southwest
	{-1, 0},  // west
	{-1, -1}, // northwest
	{0, -1},  // north
	{1, -1},  // northeast
}

// ScanFullscreen reports every cell with a full-map noun, in row-major order.
// The player's own cell is never reported.
//
// Precondition: grid is Valid and player is InBounds.
func ScanFullscreen(t *Tables, q *Quantizer, grid Grid, player Position) []Observation {
	var out []Observation
	for i, code := range grid {
		noun := t.Fullscreen(code)
		if noun == "" {
			continue
		}
		dx := i%Width - player.X
		dy := player.Y - i/Width
		if dx == 0 && dy == 0 {
			continue
		}
		qt, ok := q.Lookup(dx, dy)
		if !ok {
			continue
		}
		out = append(out, Observation{Noun: noun, Distance: qt.Distance, Direction: qt.Direction})
	}
	return out
}

// ScanVisual walks the eight rays out from the player and reports terrain
// that only the line-of-sight scan names. A ray ends at the window edge, after
// MaxRayLength cells, or after reporting a sight blocker. Cells the full-map
// scan names are passed over.
//
// Precondition: grid is Valid and player is InBounds.
func ScanVisual(t *Tables, q *Quantizer, grid Grid, player Position) []Observation {
	var out []Observation
	for _, r := range rays {
		for step := 1; step <= MaxRayLength; step++ {
			p := Position{X: player.X + r.dx*step, Y: player.Y + r.dy*step}
			if !p.InBounds() {
				break
			}
			code := grid.At(p)
			noun := t.Visual(code)
			if t.Fullscreen(code) != "" || noun == "" {
				continue
			}
			qt, ok := q.Lookup(p.X-player.X, player.Y-p.Y)
			if !ok {
				break
			}
			out = append(out, Observation{Noun: noun, Distance: qt.Distance, Direction: qt.Direction})
			if t.BlocksSight(code) {
				break
			}
		}
	}
	return out
}
