// Package glyph models the game's glyph numbering: the catalog of monsters,
// objects and warnings, the fixed terrain symbol table, and the layout that
// partitions glyph codes into disjoint ranges.
package glyph

import "fmt"

// Glyph is a display code taken from a rendered map snapshot.
type Glyph int

// Fixed symbol counts of the game build. Only monster, object and warning
// counts come from the catalog.
const (
	// NumCmapSymbols is the size of the terrain symbol table, explosion symbols included.
	NumCmapSymbols = 96
	// NumExplosionSymbols is the number of positional explosion symbols.
	NumExplosionSymbols = 9
	// NumExplosionTypes is the number of explosion colours (dark, noxious, muddy, ...).
	NumExplosionTypes = 7
	// NumZapTypes is the number of beam types.
	NumZapTypes = 8
	// NumZapDirections is the number of beam orientations per beam type.
	NumZapDirections = 4
	// NumSwallowSymbols is the number of positional swallow symbols per monster.
	NumSwallowSymbols = 8
)

// Kind identifies which glyph range a code belongs to.
type Kind int

// Glyph range kinds in ascending code order.
const (
	KindInvalid Kind = iota
	KindMonster
	KindPet
	KindInvisible
	KindDetected
	KindBody
	KindRidden
	KindObject
	KindCmap
	KindExplosion
	KindZap
	KindSwallow
	KindWarning
	KindStatue
)

var kindNames = map[Kind]string{
	KindInvalid:   "invalid",
	KindMonster:   "monster",
	KindPet:       "pet",
	KindInvisible: "invisible",
	KindDetected:  "detected",
	KindBody:      "body",
	KindRidden:    "ridden",
	KindObject:    "object",
	KindCmap:      "cmap",
	KindExplosion: "explosion",
	KindZap:       "zap",
	KindSwallow:   "swallow",
	KindWarning:   "warning",
	KindStatue:    "statue",
}

// String returns the lowercase range name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Layout holds the first code of every glyph range. Ranges are contiguous and
// ordered exactly as the game numbers them.
type Layout struct {
	NumMonsters int
	NumObjects  int
	NumWarnings int

	PetOff     Glyph
	InvisOff   Glyph
	DetectOff  Glyph
	BodyOff    Glyph
	RiddenOff  Glyph
	ObjOff     Glyph
	CmapOff    Glyph
	ExplodeOff Glyph
	ZapOff     Glyph
	SwallowOff Glyph
	WarningOff Glyph
	StatueOff  Glyph
	MaxGlyph   Glyph
}

// NewLayout computes the range offsets for the given catalog sizes.
//
// Precondition: all counts must be positive.
// Postcondition: offsets are strictly increasing and MaxGlyph is one past the last statue.
func NewLayout(numMonsters, numObjects, numWarnings int) Layout {
	l := Layout{
		NumMonsters: numMonsters,
		NumObjects:  numObjects,
		NumWarnings: numWarnings,
	}
	l.PetOff = Glyph(numMonsters)
	l.InvisOff = l.PetOff + Glyph(numMonsters)
	l.DetectOff = l.InvisOff + 1
	l.BodyOff = l.DetectOff + Glyph(numMonsters)
	l.RiddenOff = l.BodyOff + Glyph(numMonsters)
	l.ObjOff = l.RiddenOff + Glyph(numMonsters)
	l.CmapOff = l.ObjOff + Glyph(numObjects)
	l.ExplodeOff = l.CmapOff + Glyph(NumCmapSymbols-NumExplosionSymbols)
	l.ZapOff = l.ExplodeOff + Glyph(NumExplosionSymbols*NumExplosionTypes)
	l.SwallowOff = l.ZapOff + Glyph(NumZapTypes*NumZapDirections)
	l.WarningOff = l.SwallowOff + Glyph(numMonsters*NumSwallowSymbols)
	l.StatueOff = l.WarningOff + Glyph(numWarnings)
	l.MaxGlyph = l.StatueOff + Glyph(numMonsters)
	return l
}

// Kind reports the range g falls into, checked from the highest range down.
//
// Postcondition: returns KindInvalid iff g is outside [0, MaxGlyph).
func (l Layout) Kind(g Glyph) Kind {
	switch {
	case g < 0 || g >= l.MaxGlyph:
		return KindInvalid
	case g >= l.StatueOff:
		return KindStatue
	case g >= l.WarningOff:
		return KindWarning
	case g >= l.SwallowOff:
		return KindSwallow
	case g >= l.ZapOff:
		return KindZap
	case g >= l.ExplodeOff:
		return KindExplosion
	case g >= l.CmapOff:
		return KindCmap
	case g >= l.ObjOff:
		return KindObject
	case g >= l.RiddenOff:
		return KindRidden
	case g >= l.BodyOff:
		return KindBody
	case g >= l.DetectOff:
		return KindDetected
	case g >= l.InvisOff:
		return KindInvisible
	case g >= l.PetOff:
		return KindPet
	default:
		return KindMonster
	}
}

// Offset returns the distance of g from the start of its range, or -1 for
// invalid glyphs. For monster-derived ranges this is the monster index; for
// objects the object index; for cmap the symbol index.
func (l Layout) Offset(g Glyph) int {
	base, ok := l.base(l.Kind(g))
	if !ok {
		return -1
	}
	return int(g - base)
}

// MonsterIndex returns the monster a monster-derived glyph depicts.
//
// Postcondition: ok is false for glyphs that carry no monster.
func (l Layout) MonsterIndex(g Glyph) (int, bool) {
	switch l.Kind(g) {
	case KindMonster, KindPet, KindDetected, KindBody, KindRidden, KindStatue:
		return l.Offset(g), true
	case KindSwallow:
		return l.Offset(g) / NumSwallowSymbols, true
	}
	return 0, false
}

func (l Layout) base(k Kind) (Glyph, bool) {
	switch k {
	case KindMonster:
		return 0, true
	case KindPet:
		return l.PetOff, true
	case KindInvisible:
		return l.InvisOff, true
	case KindDetected:
		return l.DetectOff, true
	case KindBody:
		return l.BodyOff, true
	case KindRidden:
		return l.RiddenOff, true
	case KindObject:
		return l.ObjOff, true
	case KindCmap:
		return l.CmapOff, true
	case KindExplosion:
		return l.ExplodeOff, true
	case KindZap:
		return l.ZapOff, true
	case KindSwallow:
		return l.SwallowOff, true
	case KindWarning:
		return l.WarningOff, true
	case KindStatue:
		return l.StatueOff, true
	}
	return 0, false
}
