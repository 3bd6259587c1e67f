// Package textview renders the non-map parts of a game snapshot as plain
// text: the status line vector, the inventory and the message window.
package textview

import (
	"strconv"
	"strings"
)

// Status vector indices.
const (
	BLX = iota
	BLY
	BLStrength25
	BLStrength125
	BLDexterity
	BLConstitution
	BLIntelligence
	BLWisdom
	BLCharisma
	BLScore
	BLHP
	BLHPMax
	BLDepth
	BLGold
	BLEnergy
	BLEnergyMax
	BLArmorClass
	BLMonsterLevel
	BLExperienceLevel
	BLExperiencePoints
	BLTime
	BLHunger
	BLCarryCapacity
	BLDungeonNumber
	BLLevelNumber
	BLCondition
	BLAlignment
)

var hungerLabels = map[int64]string{
	0: "Satiated",
	1: "Not Hungry",
	2: "Hungry",
	3: "Weak",
	4: "Fainting",
	5: "Fainted",
	6: "Starved",
}

var encumbranceLabels = map[int64]string{
	0: "Unencumbered",
	1: "Burdened",
	2: "Stressed",
	3: "Strained",
	4: "Overtaxed",
	5: "Overloaded",
}

var alignmentLabels = map[int64]string{
	-128: "None",
	-1:   "Chaotic",
	0:    "Neutral",
	1:    "Lawful",
}

// Condition bits in display order.
var conditions = []struct {
	mask  int64
	label string
}{
	{0x0001, "Stoned"},
	{0x0002, "Slimed"},
	{0x0004, "Strangled"},
	{0x0008, "Food Poisoning"},
	{0x0010, "Terminally Ill"},
	{0x0020, "Blind"},
	{0x0040, "Deaf"},
	{0x0080, "Stunned"},
	{0x0100, "Confused"},
	{0x0200, "Hallucinating"},
	{0x0400, "Levitating"},
	{0x0800, "Flying"},
	{0x1000, "Riding"},
}

// ConditionLabel renders a condition bitmask as space separated labels, or
// "None" when no known bit is set.
func ConditionLabel(mask int64) string {
	var labels []string
	for _, c := range conditions {
		if mask&c.mask != 0 {
			labels = append(labels, c.label)
		}
	}
	if len(labels) == 0 {
		return "None"
	}
	return strings.Join(labels, " ")
}

// Stats renders the status vector one "Label: value" per line.
//
// Postcondition: fields missing from a short vector read as 0; enum values
// outside their tables render empty.
func Stats(blstats []int64) string {
	b := func(i int) int64 {
		if i < len(blstats) {
			return blstats[i]
		}
		return 0
	}
	n := func(i int) string { return strconv.FormatInt(b(i), 10) }
	pair := func(i, j int, sep string) string { return n(i) + sep + n(j) }

	lines := []string{
		"Strength: " + pair(BLStrength125, BLStrength25, "/"),
		"Dexterity: " + n(BLDexterity),
		"Constitution: " + n(BLConstitution),
		"Intelligence: " + n(BLIntelligence),
		"Wisdom: " + n(BLWisdom),
		"Charisma: " + n(BLCharisma),
		"Depth: " + n(BLDepth),
		"Gold: " + n(BLGold),
		"HP: " + pair(BLHP, BLHPMax, "/"),
		"Energy: " + pair(BLEnergy, BLEnergyMax, "/"),
		"AC: " + n(BLArmorClass),
		"XP: " + pair(BLExperienceLevel, BLExperiencePoints, "/"),
		"Time: " + n(BLTime),
		"Position: " + pair(BLX, BLY, "|"),
		"Hunger: " + hungerLabels[b(BLHunger)],
		"Monster Level: " + n(BLMonsterLevel),
		"Encumbrance: " + encumbranceLabels[b(BLCarryCapacity)],
		"Dungeon Number: " + n(BLDungeonNumber),
		"Level Number: " + n(BLLevelNumber),
		"Score: " + n(BLScore),
		"Alignment: " + alignmentLabels[b(BLAlignment)],
		"Condition: " + ConditionLabel(b(BLCondition)),
	}
	return strings.Join(lines, "\n")
}
