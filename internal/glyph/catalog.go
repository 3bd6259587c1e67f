package glyph

import (
	"errors"
	"fmt"
	"strings"
)

// ObjectClass is the item class tag that decides how an object is named.
type ObjectClass int

// Object classes in the game's own order.
const (
	ClassUnknown ObjectClass = iota
	ClassIllegal
	ClassWeapon
	ClassArmor
	ClassRing
	ClassAmulet
	ClassTool
	ClassFood
	ClassPotion
	ClassScroll
	ClassSpellbook
	ClassWand
	ClassCoin
	ClassGem
	ClassRock
	ClassBall
	ClassChain
	ClassVenom
)

var classNames = map[string]ObjectClass{
	"illegal":   ClassIllegal,
	"weapon":    ClassWeapon,
	"armor":     ClassArmor,
	"ring":      ClassRing,
	"amulet":    ClassAmulet,
	"tool":      ClassTool,
	"food":      ClassFood,
	"potion":    ClassPotion,
	"scroll":    ClassScroll,
	"spellbook": ClassSpellbook,
	"wand":      ClassWand,
	"coin":      ClassCoin,
	"gem":       ClassGem,
	"rock":      ClassRock,
	"ball":      ClassBall,
	"chain":     ClassChain,
	"venom":     ClassVenom,
}

// ParseObjectClass maps a lowercase class name to its ObjectClass.
//
// Postcondition: returns an error for names outside the known classes.
func ParseObjectClass(name string) (ObjectClass, error) {
	if c, ok := classNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return ClassUnknown, fmt.Errorf("unknown object class %q", name)
}

// String returns the lowercase class name.
func (c ObjectClass) String() string {
	for name, v := range classNames {
		if v == c {
			return name
		}
	}
	return "unknown"
}

// Monster is one entry of the monster table.
type Monster struct {
	Name string
}

// Object is one entry of the object table. Description is the unidentified
// appearance ("runed dagger", "ZELGO MER") and may be empty.
type Object struct {
	Name        string
	Description string
	Class       ObjectClass
}

// DefaultWarnings are the warning level explanations, lowest level first.
var DefaultWarnings = []string{
	"unknown creature causing you worry",
	"unknown creature causing you concern",
	"unknown creature causing you anxiety",
	"unknown creature causing you disquiet",
	"unknown creature causing you alarm",
	"unknown creature causing you dread",
}

// Catalog is the static game data glyph descriptions are derived from.
type Catalog struct {
	Monsters []Monster
	Objects  []Object
	Warnings []string
}

// ErrEmptyCatalog is returned when a catalog has no monsters or no objects.
var ErrEmptyCatalog = errors.New("catalog must define at least one monster and one object")

// Validate checks catalog invariants, reporting every violation.
//
// Postcondition: returns nil iff the catalog can be laid out and classified.
func (c *Catalog) Validate() error {
	if len(c.Monsters) == 0 || len(c.Objects) == 0 {
		return ErrEmptyCatalog
	}
	var errs []string
	for i, m := range c.Monsters {
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, fmt.Sprintf("monster %d has no name", i))
		}
	}
	for i, o := range c.Objects {
		if o.Class == ClassUnknown {
			errs = append(errs, fmt.Sprintf("object %d (%q) has no class", i, o.Name))
		}
	}
	if len(c.Warnings) == 0 {
		errs = append(errs, "catalog must define at least one warning level")
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Layout returns the glyph layout for this catalog's sizes.
func (c *Catalog) Layout() Layout {
	return NewLayout(len(c.Monsters), len(c.Objects), len(c.Warnings))
}

// MonsterName returns the name of monster idx, or "" when idx is out of range.
func (c *Catalog) MonsterName(idx int) string {
	if idx < 0 || idx >= len(c.Monsters) {
		return ""
	}
	return c.Monsters[idx].Name
}
