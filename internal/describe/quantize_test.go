package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestQuantize(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   Quantum
	}{
		{1, 0, Quantum{Adjacent, East}},
		{0, 1, Quantum{Adjacent, North}},
		{-1, -1, Quantum{Adjacent, Southwest}},
		{1, -1, Quantum{Adjacent, Southeast}},
		{-1, 1, Quantum{Adjacent, Northwest}},
		{1, 1, Quantum{Adjacent, Northeast}},
		{0, 2, Quantum{VeryNear, North}},
		{-2, 5, Quantum{Near, NorthNorthwest}},
		{-16, -6, Quantum{Far, WestSouthwest}},
		{3, 1, Quantum{Near, EastNortheast}},
		{2, -5, Quantum{Near, SouthSoutheast}},
		{6, 0, Quantum{Far, East}},
		{19, 0, Quantum{Far, East}},
		{20, 0, Quantum{VeryFar, East}},
		{-48, 0, Quantum{VeryFar, West}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Quantize(c.dx, c.dy), "(%d, %d)", c.dx, c.dy)
	}
}

func TestQuantize_Origin(t *testing.T) {
	q := Quantize(0, 0)
	assert.Equal(t, Direction(""), q.Direction)
	assert.Equal(t, -1, q.Direction.Rank())
}

func TestDistance_String(t *testing.T) {
	assert.Equal(t, "very far", VeryFar.String())
	assert.Equal(t, "adjacent", Adjacent.String())
	assert.Equal(t, "", Distance(9).String())
}

func TestQuantizer_LookupBounds(t *testing.T) {
	q := NewQuantizer()

	_, ok := q.Lookup(-Width, -Height)
	assert.True(t, ok)
	_, ok = q.Lookup(Width, 0)
	assert.False(t, ok)
	_, ok = q.Lookup(0, -Height-1)
	assert.False(t, ok)

	got, ok := q.Lookup(-2, 5)
	require.True(t, ok)
	assert.Equal(t, Quantum{Near, NorthNorthwest}, got)
}

// Property: every table entry equals the direct computation and carries a
// canonical label for any non-zero offset.
func TestQuantizer_Property_MatchesQuantize(t *testing.T) {
	q := NewQuantizer()
	rapid.Check(t, func(rt *rapid.T) {
		dx := rapid.IntRange(-Width, Width-1).Draw(rt, "dx")
		dy := rapid.IntRange(-Height, Height-1).Draw(rt, "dy")
		got, ok := q.Lookup(dx, dy)
		if !ok {
			rt.Fatalf("lookup (%d, %d) out of table", dx, dy)
		}
		if got != Quantize(dx, dy) {
			rt.Fatalf("table %v != direct %v", got, Quantize(dx, dy))
		}
		if (dx != 0 || dy != 0) && got.Direction.Rank() < 0 {
			rt.Fatalf("(%d, %d) has non-canonical direction %q", dx, dy, got.Direction)
		}
	})
}
