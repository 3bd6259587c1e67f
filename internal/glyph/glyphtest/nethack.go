// Package glyphtest builds catalogs with the game's real table sizes so tests
// can use the same glyph codes a live observation carries.
package glyphtest

import (
	"fmt"

	"github.com/cory-johannsen/glyphspeak/internal/glyph"
)

// Table sizes of NetHack 3.6.
const (
	NumMonsters = 381
	NumObjects  = 453
)

// Monster indices with known names.
var monsters = map[int]string{
	16:  "little dog",
	58:  "kobold",
	82:  "leocrotta",
	86:  "mastodon",
	99:  "pony",
	154: "water elemental",
	229: "monkey",
	232: "yeti",
	255: "iron golem",
	260: "elf",
	333: "monk",
	335: "priestess",
	341: "wizard",
	359: "Master of Thieves",
}

// Object indices with known names.
var objects = map[int]glyph.Object{
	0:   {Name: "strange object", Class: glyph.ClassIllegal},
	11:  {Name: "elven spear", Description: "runed spear", Class: glyph.ClassWeapon},
	61:  {Name: "quarterstaff", Description: "staff", Class: glyph.ClassWeapon},
	82:  {Name: "gray dragon scale mail", Class: glyph.ClassArmor},
	162: {Name: "free action", Description: "sapphire", Class: glyph.ClassRing},
	185: {Name: "amulet of strangulation", Description: "hexagonal", Class: glyph.ClassAmulet},
	200: {Name: "Amulet of Yendor", Description: "Amulet of Yendor", Class: glyph.ClassAmulet},
	217: {Name: "magic marker", Class: glyph.ClassTool},
	218: {Name: "can of grease", Class: glyph.ClassTool},
	257: {Name: "carrot", Class: glyph.ClassFood},
	281: {Name: "gain level", Description: "magenta", Class: glyph.ClassPotion},
	300: {Name: "teleportation", Description: "NR 9", Class: glyph.ClassScroll},
	344: {Name: "dig", Description: "mottled", Class: glyph.ClassSpellbook},
	385: {Name: "digging", Description: "crystal", Class: glyph.ClassWand},
	410: {Name: "gold piece", Class: glyph.ClassCoin},
	427: {Name: "amethyst", Description: "violet", Class: glyph.ClassGem},
	440: {Name: "worthless piece of violet glass", Description: "violet", Class: glyph.ClassGem},
	447: {Name: "boulder", Class: glyph.ClassRock},
	449: {Name: "heavy iron ball", Class: glyph.ClassBall},
	450: {Name: "iron chain", Class: glyph.ClassChain},
	452: {Name: "acid venom", Description: "splash of venom", Class: glyph.ClassVenom},
}

// NetHackCatalog returns a catalog sized like NetHack 3.6. Entries without a
// known name are filled with placeholder names ("monster 17", "object 3").
//
// Postcondition: the catalog validates and its layout matches the game's
// glyph numbering (CmapOff 2359, MaxGlyph 5976).
func NetHackCatalog() *glyph.Catalog {
	cat := &glyph.Catalog{
		Monsters: make([]glyph.Monster, NumMonsters),
		Objects:  make([]glyph.Object, NumObjects),
		Warnings: append([]string(nil), glyph.DefaultWarnings...),
	}
	for i := range cat.Monsters {
		name, ok := monsters[i]
		if !ok {
			name = fmt.Sprintf("monster %d", i)
		}
		cat.Monsters[i] = glyph.Monster{Name: name}
	}
	for i := range cat.Objects {
		obj, ok := objects[i]
		if !ok {
			obj = glyph.Object{Name: fmt.Sprintf("object %d", i), Class: glyph.ClassWeapon}
		}
		cat.Objects[i] = obj
	}
	return cat
}
