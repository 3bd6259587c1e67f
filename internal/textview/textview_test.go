package textview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var fixtureBlstats = []int64{66, 14, 19, 1, 4, 5, 6, 7, 8, 123, 11, 12, 9, 10, 1, 13, 1, 23, 7, 10, 5, 4, 2, 21, 10, 11, -1}

func TestStats_Fixture(t *testing.T) {
	want := "Strength: 1/19\n" +
		"Dexterity: 4\n" +
		"Constitution: 5\n" +
		"Intelligence: 6\n" +
		"Wisdom: 7\n" +
		"Charisma: 8\n" +
		"Depth: 9\n" +
		"Gold: 10\n" +
		"HP: 11/12\n" +
		"Energy: 1/13\n" +
		"AC: 1\n" +
		"XP: 7/10\n" +
		"Time: 5\n" +
		"Position: 66|14\n" +
		"Hunger: Fainting\n" +
		"Monster Level: 23\n" +
		"Encumbrance: Stressed\n" +
		"Dungeon Number: 21\n" +
		"Level Number: 10\n" +
		"Score: 123\n" +
		"Alignment: Chaotic\n" +
		"Condition: Stoned Slimed Food Poisoning"
	assert.Equal(t, want, Stats(fixtureBlstats))
}

func TestStats_Conditions(t *testing.T) {
	b := append([]int64(nil), fixtureBlstats...)

	b[BLCondition] = 0
	assert.Contains(t, Stats(b), "Condition: None")

	b[BLCondition] = 2048
	assert.Contains(t, Stats(b), "Condition: Flying")
}

func TestStats_EnumLabels(t *testing.T) {
	b := append([]int64(nil), fixtureBlstats...)
	b[BLCarryCapacity] = 0
	b[BLAlignment] = -128
	out := Stats(b)
	assert.Contains(t, out, "Encumbrance: Unencumbered")
	assert.Contains(t, out, "Alignment: None")

	b[BLHunger] = 42
	assert.Contains(t, Stats(b), "Hunger: \n")
}

func TestStats_ShortVector(t *testing.T) {
	out := Stats([]int64{3, 4})
	assert.Contains(t, out, "Position: 3|4")
	assert.Contains(t, out, "Hunger: Satiated")
	assert.Contains(t, out, "Alignment: Neutral")
	assert.Contains(t, out, "Condition: None")
}

func TestConditionLabel_AllBits(t *testing.T) {
	assert.Equal(t,
		"Stoned Slimed Strangled Food Poisoning Terminally Ill Blind Deaf Stunned Confused Hallucinating Levitating Flying Riding",
		ConditionLabel(0x1fff))
}

func bytesRows(rows []string, width int) [][]byte {
	out := make([][]byte, len(rows))
	for i, r := range rows {
		b := []byte(strings.Repeat(" ", width))
		copy(b, r)
		out[i] = b
	}
	return out
}

func nulRows(rows []string, width int) [][]byte {
	out := make([][]byte, len(rows))
	for i, r := range rows {
		b := make([]byte, width)
		copy(b, r)
		out[i] = b
	}
	return out
}

func TestInventory(t *testing.T) {
	rows := nulRows([]string{
		"a blessed +1 quarterstaff (weapon in hands)",
		"an uncursed +0 cloak of magic resistance (being worn)",
		"stale",
	}, 80)
	letters := []byte("ab\x00c")

	want := "a: a blessed +1 quarterstaff (weapon in hands)\n" +
		"b: an uncursed +0 cloak of magic resistance (being worn)"
	assert.Equal(t, want, Inventory(rows, letters))
}

func TestInventory_Empty(t *testing.T) {
	assert.Equal(t, "", Inventory(nil, []byte{0}))
	assert.Equal(t, "", Inventory(nil, nil))
}

func TestInventory_MissingRow(t *testing.T) {
	assert.Equal(t, "a: ", Inventory(nil, []byte("a")))
}

var screenMap = []string{
	"         -----------------------------------------|           ",
	"         |               @                        |           ",
}

func TestMessage(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want string
	}{
		{
			name: "spell menu",
			rows: append([]string{
				"   Choose which spell to cast                               ",
				"                                                             ",
				"   Name                 Level Category     Fail Retention   ",
				"   a - healing                1   healing        0%      100%",
				"   (end)                                                     ",
				"                                                      ",
				"                                                      ",
			}, screenMap...),
			want: "Choose which spell to cast\n\nName                 Level Category     Fail Retention\na - healing                1   healing        0%      100%\n(end)",
		},
		{
			name: "more",
			rows: append([]string{
				" Things that are here:      ",
				" a goblin corpse             ",
				" an iron skull cap           ",
				" --More--                    ",
			}, screenMap...),
			want: "Things that are here:\na goblin corpse\nan iron skull cap\n--More--",
		},
		{
			name: "single line",
			rows: append([]string{" It's a wall. ", " "}, screenMap...),
			want: "It's a wall.",
		},
		{
			name: "bracket prompt",
			rows: append([]string{" What do you want to drop? [$a-k or ?*] ", " "}, screenMap...),
			want: "What do you want to drop? [$a-k or ?*]",
		},
		{
			name: "parenthesis prompt",
			rows: append([]string{" Where do you want to travel to?  (For instructions type a '?') ", " "}, screenMap...),
			want: "Where do you want to travel to?  (For instructions type a '?')",
		},
		{
			name: "multipage",
			rows: []string{
				" Extended Commands List    ",
				"                               ",
				" a - Hide commands that don't autocomplete (those not marked with [A])   ",
				" : - Search extended commands      ",
				" ",
				" Extended commands                     ",
				" #                  perform an extended command  ",
				" ?              [A] list all extended commands  ",
				" adjust         [A] adjust inventory letters   ",
				" annotate       [A] name current level  ",
				" (1 of 5) ",
			},
			want: "Extended Commands List\n\na - Hide commands that don't autocomplete (those not marked with [A])\n" +
				": - Search extended commands\n\nExtended commands\n#                  perform an extended command\n" +
				"?              [A] list all extended commands\nadjust         [A] adjust inventory letters\n" +
				"annotate       [A] name current level\n(1 of 5)",
		},
		{
			name: "takeoffall",
			rows: append([]string{
				" What type of things do you want to take off?    ",
				" ",
				"  a - All worn types                             ",
				" b - Weapons ",
				" c - Armor ",
				" U - Items known to be Uncursed ",
				" (end) ",
			}, screenMap...),
			want: "What type of things do you want to take off?\n\na - All worn types\nb - Weapons\nc - Armor\nU - Items known to be Uncursed\n(end)",
		},
		{
			name: "map left of conduct",
			rows: []string{
				"                          Voluntary challenges:                  ",
				"                           You have gone without food.              ",
				"                           You have been an atheist.                ",
				"              -----        You have never hit with a wielded weapon.",
				"             #+....######  You have been a pacifist.                ",
				"             #+....######  --More--                ",
			},
			want: "Voluntary challenges:\nYou have gone without food.\nYou have been an atheist.\n" +
				"You have never hit with a wielded weapon.\nYou have been a pacifist.\n--More--",
		},
		{
			name: "map left of name menu",
			rows: []string{
				"                              What do you want to name? ",
				"                                                        ",
				"---------                     m - a monster ",
				"|........                     i - a particular object in inventory ",
				"|.......|                     o - the type of an object in inventory  ",
				"|....@.%|                     f - the type of an object upon the floor  ",
				"|!...df.|                     d - the type of an object on discoveries list ",
				"|.......+                     a - record an annotation for the current level ",
				"--+------                     (end)",
			},
			want: "What do you want to name?\n\nm - a monster\ni - a particular object in inventory\n" +
				"o - the type of an object in inventory\nf - the type of an object upon the floor\n" +
				"d - the type of an object on discoveries list\na - record an annotation for the current level\n(end)",
		},
		{
			name: "travel",
			rows: []string{"doorway      ", "", "      ------------ ", "      |..........| "},
			want: "doorway",
		},
		{
			name: "page counter with two digits",
			rows: []string{" Discoveries ", " (12 of 14) "},
			want: "Discoveries\n(12 of 14)",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Message(bytesRows(c.rows, 80)))
		})
	}
}

func TestMessage_BlankFirstRow(t *testing.T) {
	assert.Equal(t, "", Message(bytesRows([]string{"", " --More--"}, 80)))
	assert.Equal(t, "", Message(nil))
}

func TestMessage_TrimsNul(t *testing.T) {
	assert.Equal(t, "Hello", Message(nulRows([]string{"Hello"}, 20)))
}

// Property: output never has leading or trailing blanks on its first line.
func TestMessage_Property_Trimmed(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(rt, "rows")
		rows := make([]string, n)
		for i := range rows {
			rows[i] = rapid.StringMatching(`[ a-z.(-]{0,30}`).Draw(rt, "row")
		}
		out := Message(bytesRows(rows, 40))
		first, _, _ := strings.Cut(out, "\n")
		if strings.TrimSpace(first) != first {
			rt.Fatalf("untrimmed first line %q", first)
		}
	})
}
