package describe

// Distance is a coarse distance band.
type Distance int

// Distance bands in canonical output order, farthest first.
const (
	VeryFar Distance = iota
	Far
	Near
	VeryNear
	Adjacent
)

var distanceLabels = [...]string{
	VeryFar:  "very far",
	Far:      "far",
	Near:     "near",
	VeryNear: "very near",
	Adjacent: "adjacent",
}

// String returns the band label used in descriptions.
func (d Distance) String() string {
	if d < VeryFar || d > Adjacent {
		return ""
	}
	return distanceLabels[d]
}

// Direction is a 16-point compass label. The empty Direction is the player's own cell.
type Direction string

// Compass directions in canonical output order, clockwise from north.
const (
	North          Direction = "north"
	NorthNortheast Direction = "northnortheast"
	Northeast      Direction = "northeast"
	EastNortheast  Direction = "eastnortheast"
	East           Direction = "east"
	EastSoutheast  Direction = "eastsoutheast"
	Southeast      Direction = "southeast"
	SouthSoutheast Direction = "southsoutheast"
	South          Direction = "south"
	SouthSouthwest Direction = "southsouthwest"
	Southwest      Direction = "southwest"
	WestSouthwest  Direction = "westsouthwest"
	West           Direction = "west"
	WestNorthwest  Direction = "westnorthwest"
	Northwest      Direction = "northwest"
	NorthNorthwest Direction = "northnorthwest"
)

var compassOrder = []Direction{
	North, NorthNortheast, Northeast, EastNortheast,
	East, EastSoutheast, Southeast, SouthSoutheast,
	South, SouthSouthwest, Southwest, WestSouthwest,
	West, WestNorthwest, Northwest, NorthNorthwest,
}

var compassRank = func() map[Direction]int {
	m := make(map[Direction]int, len(compassOrder))
	for i, d := range compassOrder {
		m[d] = i
	}
	return m
}()

// Rank returns the position of d in compass order, or -1 for labels outside it.
func (d Direction) Rank() int {
	if r, ok := compassRank[d]; ok {
		return r
	}
	return -1
}

// Quantum is the band and direction of one relative offset.
type Quantum struct {
	Distance  Distance
	Direction Direction
}

// Quantize maps a relative offset to its band and direction. dy is
// north-positive: a cell above the player has dy > 0.
//
// Postcondition: (0, 0) yields Direction "" in the VeryFar band.
func Quantize(dx, dy int) Quantum {
	diag := min(abs(dx), abs(dy))

	diagonal := ""
	if diag > 0 {
		switch {
		case dy < 0 && dx < 0:
			diagonal = "southwest"
		case dy < 0 && dx > 0:
			diagonal = "southeast"
		case dy > 0 && dx < 0:
			diagonal = "northwest"
		default:
			diagonal = "northeast"
		}
	}

	xRest, yRest := dx, dy
	if dx > 0 {
		xRest -= diag
	} else {
		xRest += diag
	}
	if dy > 0 {
		yRest -= diag
	} else {
		yRest += diag
	}

	vertical := ""
	switch {
	case yRest > 0:
		vertical = "north"
	case yRest < 0:
		vertical = "south"
	}
	horizontal := ""
	switch {
	case xRest > 0:
		horizontal = "east"
	case xRest < 0:
		horizontal = "west"
	}

	return Quantum{
		Distance:  band(max(abs(dx), abs(dy))),
		Direction: Direction(vertical + horizontal + diagonal),
	}
}

func band(magnitude int) Distance {
	switch {
	case magnitude == 1:
		return Adjacent
	case magnitude == 2:
		return VeryNear
	case magnitude >= 3 && magnitude <= 5:
		return Near
	case magnitude >= 6 && magnitude <= 19:
		return Far
	default:
		return VeryFar
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Quantizer is the precomputed Quantize table over every offset a map cell
// can have from a player inside the window.
type Quantizer struct {
	table [2 * Width][2 * Height]Quantum
}

// NewQuantizer fills the table.
//
// Postcondition: Lookup(dx, dy) == Quantize(dx, dy) for every in-range offset.
func NewQuantizer() *Quantizer {
	q := &Quantizer{}
	for x := 0; x < 2*Width; x++ {
		for y := 0; y < 2*Height; y++ {
			q.table[x][y] = Quantize(x-Width, y-Height)
		}
	}
	return q
}

// Lookup returns the quantum for a relative offset.
//
// Postcondition: ok is false when (dx+Width, dy+Height) falls outside the table.
func (q *Quantizer) Lookup(dx, dy int) (Quantum, bool) {
	x, y := dx+Width, dy+Height
	if x < 0 || x >= 2*Width || y < 0 || y >= 2*Height {
		return Quantum{}, false
	}
	return q.table[x][y], true
}
