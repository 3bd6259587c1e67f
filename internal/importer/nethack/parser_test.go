package nethack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/glyphspeak/internal/importer"
)

const monstFixture = `
/* monst.c excerpt */
#include "config.h"
#define SEDUCTION_ATTACKS_YES \
    A(ATTK(AT_BITE, AD_SSEX, 0, 0), NO_ATTK)

NEARDATA struct permonst mons[] = {
    /* ants */
    MON("giant ant", S_ANT, LVL(2, 18, 3, 0, 0), (G_GENO | G_SGROUP | 3),
        A(ATTK(AT_BITE, AD_PHYS, 1, 4), NO_ATTK, NO_ATTK, NO_ATTK, NO_ATTK,
          NO_ATTK),
        SIZ(10, 10, MS_SILENT, MZ_TINY), 0, 0, M1_ANIMAL, M2_HOSTILE, 0,
        CLR_BROWN),
#if 0
    MON("zruty clone", S_ZRUTY, LVL(9, 8, 3, 0, 0), 0, A(NO_ATTK), SIZ(0, 0, 0, 0),
        0, 0, 0, 0, 0, CLR_BROWN),
#endif
    MON("little dog", S_DOG, LVL(2, 18, 6, 0, 0), (G_GENO | 1),
        A(ATTK(AT_BITE, AD_PHYS, 1, 6), NO_ATTK), SIZ(150, 150, MS_BARK, MZ_SMALL),
        0, 0, M1_ANIMAL, M2_DOMESTIC, M3_INFRAVISIBLE, HI_DOMESTIC),
#ifdef CHARON /* not supported yet */
    MON("Charon", S_HUMAN, LVL(76, 18, -5, 120, 0), (G_NOHELL | G_NOGEN | G_UNIQ),
        A(NO_ATTK), SIZ(WT_HUMAN, 400, MS_FERRY, MZ_HUMAN), 0, 0, 0, 0, 0, HI_LORD),
#endif
    // line comment MON("ghost of a comment", 0)
    MON("Woodland-elf", S_HUMAN, LVL(4, 12, 10, 10, -5), (G_GENO | G_SGROUP | 2),
        A(ATTK(AT_WEAP, AD_PHYS, 2, 4), NO_ATTK), SIZ(WT_ELF, 350, MS_HUMANOID, MZ_HUMAN),
        MR_SLEEP, MR_SLEEP, M1_HUMANOID, M2_ELF, M3_INFRAVISIBLE, CLR_GREEN),
    /* array terminator */
    MON("", 0, LVL(0, 0, 0, 0, 0), (0), A(NO_ATTK), SIZ(0, 0, 0, 0), 0, 0, 0L, 0L, 0,
        0)
};
`

const objectsFixture = `
#ifndef OBJECTS_PASS_2_
#define OBJ(name, desc) name, desc
#define OBJECT(obj, bits, prp, sym, prob, dly, wt, cost, sdam, ldam, oc1, oc2, nut, color) \
    {                                                                  \
        0, 0, (char *) 0, bits, prp, sym, dly, COLOR_FIELD(color) prob, wt, \
            cost, sdam, ldam, oc1, oc2, nut                            \
    }
#define None (char *) 0
#else
#define OBJ(name, desc) { name, desc }
#endif

NEARDATA struct objclass objects[] = {
OBJECT(OBJ("strange object", None),
       BITS(1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, P_NONE, 0),
       0, ILLEGAL_OBJ_CLASS, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
PROJECTILE("elven arrow", "runed arrow",
           0, 20, 1, 2, 7, 6, 0, WOOD, -P_BOW, HI_WOOD),
WEAPON("long sword", None,
       1, 0, 0, 50, 40, 15, 8, 12, 0, S, P_LONG_SWORD, IRON, HI_METAL),
DRGN_ARMR("gray dragon scale mail",   1, ANTIMAGIC,  1200, 1, CLR_GRAY),
RING("free action", "sapphire", FREE_ACTION, 200, 1, 0, 0, 0, IRON, HI_METAL),
FOOD("carrot", 15, 1, 2, 0, VEGGY, 50, CLR_ORANGE),
SCROLL("teleportation", "VENZAR BORGAVVE", 1, 55, 100),
#ifdef MAIL
SCROLL("mail", "stamped", 0, 0, 0),
#endif
#ifndef TOURIST
SCROLL("postcard", "stamped", 0, 0, 0),
#else
SCROLL("tourist map", "folded", 0, 0, 0),
#endif
SCROLL((char *) 0, "FOOBIE BLETCH", 1, 0, 100),
COIN("gold piece", 1000, GOLD, 1),
ROCK("luckstone", "gray", 0, 10, 10, 60, 3, 3, 1, 10, 7, MINERAL, CLR_GRAY),
OBJECT(OBJ("boulder", None),
       BITS(1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, P_NONE, MINERAL), 0,
       ROCK_CLASS, 100, 0, 6000, 0, 20, 20, 0, 0, 2000, HI_MINERAL),
OBJECT(OBJ("acid venom", "splash of venom"),
       BITS(0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, P_NONE, LIQUID), 0,
       VENOM_CLASS, 500, 0, 1, 0, 6, 6, 0, 0, 0, HI_ORGANIC),
/* terminator */
OBJECT(OBJ((char *) 0, (char *) 0),
       BITS(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
};
`

func defines(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func TestParseMonsters(t *testing.T) {
	names, err := ParseMonsters(monstFixture, defines("MAIL"))
	require.NoError(t, err)
	assert.Equal(t, []string{"giant ant", "little dog", "Woodland-elf"}, names)
}

func TestParseMonsters_DefinedBlockIncluded(t *testing.T) {
	names, err := ParseMonsters(monstFixture, defines("CHARON"))
	require.NoError(t, err)
	assert.Equal(t, []string{"giant ant", "little dog", "Charon", "Woodland-elf"}, names)
}

func TestParseMonsters_Empty(t *testing.T) {
	_, err := ParseMonsters("int x = 0;", nil)
	assert.Error(t, err)
}

func TestParseObjects(t *testing.T) {
	objs, err := ParseObjects(objectsFixture, defines("MAIL"))
	require.NoError(t, err)

	want := []importer.ObjectSpec{
		{Name: "strange object", Class: "illegal"},
		{Name: "elven arrow", Description: "runed arrow", Class: "weapon"},
		{Name: "long sword", Class: "weapon"},
		{Name: "gray dragon scale mail", Class: "armor"},
		{Name: "free action", Description: "sapphire", Class: "ring"},
		{Name: "carrot", Class: "food"},
		{Name: "teleportation", Description: "VENZAR BORGAVVE", Class: "scroll"},
		{Name: "mail", Description: "stamped", Class: "scroll"},
		{Name: "postcard", Description: "stamped", Class: "scroll"},
		{Description: "FOOBIE BLETCH", Class: "scroll"},
		{Name: "gold piece", Class: "coin"},
		{Name: "luckstone", Description: "gray", Class: "gem"},
		{Name: "boulder", Class: "rock"},
		{Name: "acid venom", Description: "splash of venom", Class: "venom"},
	}
	assert.Equal(t, want, objs)
}

func TestParseObjects_ConditionalBranches(t *testing.T) {
	objs, err := ParseObjects(objectsFixture, defines("TOURIST"))
	require.NoError(t, err)

	var names []string
	for _, o := range objs {
		names = append(names, o.Name)
	}
	assert.NotContains(t, names, "mail")
	assert.NotContains(t, names, "postcard")
	assert.Contains(t, names, "tourist map")
}

func TestParseObjects_Empty(t *testing.T) {
	_, err := ParseObjects("/* nothing */", nil)
	assert.Error(t, err)
}

func TestLex_DirectivesAndComments(t *testing.T) {
	src := "#define X \\\n  continued\nA /* b */ \"c\\\"d\" 'e' 12 // f\n#\tifdef\tNOPE\nG\n#endif\nH"
	var got []string
	for _, tok := range lex(src, nil) {
		got = append(got, tok.text)
	}
	assert.Equal(t, []string{"A", `c"d`, "'", "12", "H"}, got)
}

func TestLex_NestedConditionals(t *testing.T) {
	src := strings.Join([]string{
		"#if defined(A) && !defined(B)",
		"one",
		"#if 0",
		"two",
		"#elif defined(C)",
		"three",
		"#else",
		"four",
		"#endif",
		"#else",
		"five",
		"#endif",
	}, "\n")

	texts := func(defs map[string]bool) []string {
		var out []string
		for _, tok := range lex(src, defs) {
			out = append(out, tok.text)
		}
		return out
	}
	assert.Equal(t, []string{"one", "four"}, texts(defines("A")))
	assert.Equal(t, []string{"one", "three"}, texts(defines("A", "C")))
	assert.Equal(t, []string{"five"}, texts(defines("A", "B")))
	assert.Equal(t, []string{"five"}, texts(nil))
}

// Property: the lexer terminates on arbitrary input and never yields a token
// from inside a disabled block.
func TestPropertyLexDisabledBlockHidden(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		body := rapid.StringMatching(`[a-z0-9 (),;"'/*\n]{0,60}`).Draw(rt, "body")
		toks := lex("#if 0\nhidden_marker "+body+"\n#endif\nvisible", nil)
		for _, tok := range toks {
			if tok.text == "hidden_marker" {
				rt.Fatalf("token from disabled block: %q", tok.text)
			}
		}
	})
}
