package describe

import (
	"strings"

	"github.com/cory-johannsen/glyphspeak/internal/glyph"
)

// DisplayEntry is how one glyph is named by each scan. An empty field means
// that scan never reports the glyph.
type DisplayEntry struct {
	Fullscreen string
	Visual     string
}

// Tables holds the per-glyph nouns for both scans, indexed by glyph code.
type Tables struct {
	layout     glyph.Layout
	fullscreen []string
	visual     []string
	blocks     []bool
}

// BuildTables classifies every glyph of the catalog's layout once.
//
// Precondition: cat must be valid.
// Postcondition: every code in [0, MaxGlyph) has an entry.
func BuildTables(cat *glyph.Catalog) *Tables {
	l := cat.Layout()
	t := &Tables{
		layout:     l,
		fullscreen: make([]string, l.MaxGlyph),
		visual:     make([]string, l.MaxGlyph),
		blocks:     make([]bool, l.MaxGlyph),
	}
	for g := glyph.Glyph(0); g < l.MaxGlyph; g++ {
		e := classify(cat, l, g)
		t.fullscreen[g] = e.Fullscreen
		t.visual[g] = e.Visual
		t.blocks[g] = e.Visual != "" && glyph.BlocksSight(e.Visual)
	}
	return t
}

// Layout returns the glyph layout the tables were built for.
func (t *Tables) Layout() glyph.Layout { return t.layout }

// Entry returns both nouns for g; out of range codes yield the empty entry.
func (t *Tables) Entry(g glyph.Glyph) DisplayEntry {
	if g < 0 || int(g) >= len(t.fullscreen) {
		return DisplayEntry{}
	}
	return DisplayEntry{Fullscreen: t.fullscreen[g], Visual: t.visual[g]}
}

// Fullscreen returns the full-map noun for g.
func (t *Tables) Fullscreen(g glyph.Glyph) string { return t.Entry(g).Fullscreen }

// Visual returns the line-of-sight noun for g.
func (t *Tables) Visual(g glyph.Glyph) string { return t.Entry(g).Visual }

// BlocksSight reports whether a ray stops after emitting g.
func (t *Tables) BlocksSight(g glyph.Glyph) bool {
	if g < 0 || int(g) >= len(t.blocks) {
		return false
	}
	return t.blocks[g]
}

// Nouns returns every distinct non-empty noun in either table, in first-seen order.
func (t *Tables) Nouns() []string {
	seen := make(map[string]struct{})
	var nouns []string
	add := func(n string) {
		if n == "" {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		nouns = append(nouns, n)
	}
	for i := range t.fullscreen {
		add(t.fullscreen[i])
		add(t.visual[i])
	}
	return nouns
}

func classify(cat *glyph.Catalog, l glyph.Layout, g glyph.Glyph) DisplayEntry {
	off := l.Offset(g)
	switch l.Kind(g) {
	case glyph.KindStatue:
		return DisplayEntry{Fullscreen: cat.MonsterName(off) + " statue"}
	case glyph.KindWarning:
		if off < len(cat.Warnings) {
			return DisplayEntry{Fullscreen: cat.Warnings[off]}
		}
		return DisplayEntry{}
	case glyph.KindSwallow:
		return DisplayEntry{Fullscreen: glyph.SwallowLabel(off)}
	case glyph.KindZap:
		return DisplayEntry{Fullscreen: glyph.ZapLabel(off)}
	case glyph.KindExplosion:
		return DisplayEntry{Fullscreen: glyph.ExplosionLabel(off)}
	case glyph.KindCmap:
		return classifyCmap(off)
	case glyph.KindObject:
		return DisplayEntry{Fullscreen: objectNoun(cat.Objects[off])}
	case glyph.KindRidden:
		return DisplayEntry{Fullscreen: "ridden " + cat.MonsterName(off)}
	case glyph.KindBody:
		return DisplayEntry{Fullscreen: cat.MonsterName(off) + " corpse"}
	case glyph.KindDetected:
		return DisplayEntry{Fullscreen: "detected " + cat.MonsterName(off)}
	case glyph.KindInvisible:
		return DisplayEntry{Fullscreen: "invisible creature"}
	case glyph.KindPet:
		return DisplayEntry{Fullscreen: "tame " + cat.MonsterName(off)}
	case glyph.KindMonster:
		return DisplayEntry{Fullscreen: cat.MonsterName(off)}
	}
	return DisplayEntry{}
}

func classifyCmap(idx int) DisplayEntry {
	symbol, ok := glyph.CmapSymbol(idx)
	if !ok || glyph.IsFloor(symbol) {
		return DisplayEntry{}
	}
	if glyph.IsAlwaysReported(symbol) {
		return DisplayEntry{Fullscreen: symbol}
	}
	return DisplayEntry{Visual: symbol}
}

func objectNoun(o glyph.Object) string {
	switch o.Class {
	case glyph.ClassIllegal, glyph.ClassWeapon, glyph.ClassCoin,
		glyph.ClassRock, glyph.ClassBall, glyph.ClassChain:
		return o.Name
	case glyph.ClassArmor, glyph.ClassTool:
		if o.Description != "" {
			return o.Description
		}
		return o.Name
	case glyph.ClassRing:
		return o.Description + " ring"
	case glyph.ClassAmulet:
		if strings.Contains(o.Description, "Amulet") {
			return o.Description
		}
		return o.Description + " amulet"
	case glyph.ClassFood:
		return o.Name + o.Description
	case glyph.ClassPotion:
		return o.Description + " potion"
	case glyph.ClassScroll:
		return "scroll labeled " + o.Description
	case glyph.ClassSpellbook:
		return o.Description + " spellbook"
	case glyph.ClassWand:
		return o.Description + " wand"
	case glyph.ClassGem:
		if strings.Contains(o.Name, o.Description) {
			return o.Name
		}
		return o.Description + " " + o.Name
	case glyph.ClassVenom:
		return "splash of " + o.Name
	}
	return ""
}
