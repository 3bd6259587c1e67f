package glyph

// cmapSymbols names every terrain, trap and effect symbol by symbol index.
// Indices 87 and up are the explosion symbols, which the glyph layout maps
// into their own range.
var cmapSymbols = [NumCmapSymbols]string{
	"dark area",
	"vertical wall",
	"horizontal wall",
	"northwest room corner",
	"northeast room corner",
	"southwest corner",
	"southeast corner",
	"cross wall",
	"t up wall",
	"t down wall",
	"t west wall",
	"t east wall",
	"doorway",
	"vertical open door",
	"horizontal open door",
	"vertical closed door",
	"horizontal closed door",
	"bars",
	"tree",
	"room floor",
	"dark room floor",
	"corridor floor",
	"lit corridor floor",
	"stairs up",
	"stairs down",
	"ladder up",
	"ladder down",
	"altar",
	"grave",
	"throne",
	"sink",
	"fountain",
	"pool",
	"ice",
	"lava",
	"vertical lowered drawbridge",
	"horizontal lowered drawbridge",
	"vertical raised drawbridge",
	"horizontal raised drawbridge",
	"air floor",
	"cloud floor",
	"water floor",
	"arrow trap",
	"dart trap",
	"falling rock trap",
	"squeaky board",
	"bear trap",
	"land mine",
	"rolling boulder trap",
	"sleeping gas trap",
	"rust trap",
	"fire trap",
	"pit",
	"spiked pit",
	"hole",
	"trap door",
	"teleportation trap",
	"level teleporter",
	"magic portal",
	"web",
	"statue trap",
	"magic trap",
	"anti magic trap",
	"polymorph trap",
	"vibrating square",
	"vertical beam",
	"horizontal beam",
	"left slant beam",
	"right slant beam",
	"dig beam",
	"flash beam",
	"boom left",
	"boom right",
	"shield 1",
	"shield 2",
	"shield 3",
	"shield 4",
	"poison cloud",
	"valid position",
	"swallow top left",
	"swallow top center",
	"swallow top right",
	"swallow middle left",
	"swallow middle right",
	"swallow bottom left",
	"swallow bottom center",
	"swallow bottom right",
	"explosion top left",
	"explosion top center",
	"explosion top right",
	"explosion middle left",
	"explosion middle center",
	"explosion middle right",
	"explosion bottom left",
	"explosion bottom center",
	"explosion bottom right",
}

// Positional labels for the animation ranges, indexed by (glyph - base) mod len.
var (
	swallowLabels = [NumSwallowSymbols]string{
		"swallow top left",
		"swallow top center",
		"swallow top right",
		"swallow middle left",
		"swallow middle right",
		"swallow bottom left",
		"swallow bottom center",
		"swallow bottom right",
	}
	zapLabels = [NumZapDirections]string{
		"horizontal zap beam",
		"vertical zap beam",
		"left slant zap beam",
		"right slant zap beam",
	}
	explosionLabels = [NumExplosionSymbols]string{
		"explosion top left",
		"explosion top center",
		"explosion top right",
		"explosion middle left",
		"explosion middle center",
		"explosion middle right",
		"explosion bottom left",
		"explosion bottom center",
		"explosion bottom right",
	}
)

var floorSymbols = map[string]struct{}{
	"room floor":         {},
	"dark room floor":    {},
	"corridor floor":     {},
	"lit corridor floor": {},
}

// alwaysReport is terrain listed by the full-map scan wherever it appears.
var alwaysReport = map[string]struct{}{
	"horizontal closed door":       {},
	"vertical closed door":         {},
	"bars":                         {},
	"tree":                         {},
	"stairs up":                    {},
	"stairs down":                  {},
	"ladder up":                    {},
	"ladder down":                  {},
	"altar":                        {},
	"grave":                        {},
	"throne":                       {},
	"sink":                         {},
	"fountain":                     {},
	"pool":                         {},
	"ice":                          {},
	"lava":                         {},
	"vertical raised drawbridge":   {},
	"horizontal raised drawbridge": {},
}

var sightBlockers = map[string]struct{}{
	"dark area":                    {},
	"vertical wall":                {},
	"horizontal wall":              {},
	"northwest room corner":        {},
	"northeast room corner":        {},
	"southwest corner":             {},
	"southeast corner":             {},
	"cross wall":                   {},
	"t up wall":                    {},
	"t down wall":                  {},
	"t west wall":                  {},
	"t east wall":                  {},
	"horizontal closed door":       {},
	"vertical closed door":         {},
	"horizontal raised drawbridge": {},
	"vertical raised drawbridge":   {},
}

// CmapSymbol returns the terrain symbol name at idx.
//
// Postcondition: ok is false when idx is outside the symbol table.
func CmapSymbol(idx int) (string, bool) {
	if idx < 0 || idx >= len(cmapSymbols) {
		return "", false
	}
	return cmapSymbols[idx], true
}

// SwallowLabel returns the positional swallow label for a swallow range offset.
func SwallowLabel(offset int) string { return swallowLabels[offset%NumSwallowSymbols] }

// ZapLabel returns the beam orientation label for a zap range offset.
func ZapLabel(offset int) string { return zapLabels[offset%NumZapDirections] }

// ExplosionLabel returns the positional explosion label for an explosion range offset.
func ExplosionLabel(offset int) string { return explosionLabels[offset%NumExplosionSymbols] }

// IsFloor reports whether the terrain symbol is plain floor.
func IsFloor(symbol string) bool {
	_, ok := floorSymbols[symbol]
	return ok
}

// IsAlwaysReported reports whether the terrain symbol is listed regardless of sight.
func IsAlwaysReported(symbol string) bool {
	_, ok := alwaysReport[symbol]
	return ok
}

// BlocksSight reports whether the terrain symbol stops a line of sight.
func BlocksSight(symbol string) bool {
	_, ok := sightBlockers[symbol]
	return ok
}
