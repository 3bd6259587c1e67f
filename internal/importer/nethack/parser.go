package nethack

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/glyphspeak/internal/importer"
)

// objectMacros maps each object-table macro to the class of the objects it
// declares and whether its second argument is the unidentified description.
var objectMacros = map[string]struct {
	class   string
	hasDesc bool
}{
	"PROJECTILE": {"weapon", true},
	"BOW":        {"weapon", true},
	"WEAPON":     {"weapon", true},
	"HELM":       {"armor", true},
	"CLOAK":      {"armor", true},
	"SHIELD":     {"armor", true},
	"GLOVES":     {"armor", true},
	"BOOTS":      {"armor", true},
	"ARMOR":      {"armor", true},
	"DRGN_ARMR":  {"armor", false},
	"RING":       {"ring", true},
	"AMULET":     {"amulet", true},
	"TOOL":       {"tool", true},
	"CONTAINER":  {"tool", true},
	"WEPTOOL":    {"tool", true},
	"FOOD":       {"food", false},
	"POTION":     {"potion", true},
	"SCROLL":     {"scroll", true},
	"SPELL":      {"spellbook", true},
	"WAND":       {"wand", true},
	"COIN":       {"coin", false},
	"GEM":        {"gem", true},
	"ROCK":       {"gem", true},
}

// classConstants maps the game's class constants to catalog class names.
var classConstants = map[string]string{
	"ILLEGAL_OBJ_CLASS": "illegal",
	"WEAPON_CLASS":      "weapon",
	"ARMOR_CLASS":       "armor",
	"RING_CLASS":        "ring",
	"AMULET_CLASS":      "amulet",
	"TOOL_CLASS":        "tool",
	"FOOD_CLASS":        "food",
	"POTION_CLASS":      "potion",
	"SCROLL_CLASS":      "scroll",
	"SPBOOK_CLASS":      "spellbook",
	"WAND_CLASS":        "wand",
	"COIN_CLASS":        "coin",
	"GEM_CLASS":         "gem",
	"ROCK_CLASS":        "rock",
	"BALL_CLASS":        "ball",
	"CHAIN_CLASS":       "chain",
	"VENOM_CLASS":       "venom",
}

// callArgs splits the argument list of the call whose name is toks[i].
//
// Postcondition: ok is false unless toks[i+1] opens a balanced argument list;
// end is the index of the closing parenthesis.
func callArgs(toks []token, i int) (args [][]token, end int, ok bool) {
	if i+1 >= len(toks) || toks[i+1].text != "(" {
		return nil, i, false
	}
	depth := 0
	var cur []token
	for j := i + 1; j < len(toks); j++ {
		t := toks[j]
		if t.kind == tokPunct {
			switch t.text {
			case "(", "{", "[":
				depth++
				if depth == 1 {
					continue
				}
			case ")", "}", "]":
				depth--
				if depth == 0 {
					return append(args, cur), j, true
				}
			case ",":
				if depth == 1 {
					args = append(args, cur)
					cur = nil
					continue
				}
			}
		}
		cur = append(cur, t)
	}
	return nil, i, false
}

// argString joins the string literals of one argument; an argument without a
// literal (None, a null pointer cast) yields "".
func argString(arg []token) string {
	var b strings.Builder
	for _, t := range arg {
		if t.kind == tokString {
			b.WriteString(t.text)
		}
	}
	return b.String()
}

// ParseMonsters returns the monster names of a monst.c style table in
// declaration order. The empty-named terminator entry is dropped.
func ParseMonsters(src string, defines map[string]bool) ([]string, error) {
	toks := lex(src, defines)
	var names []string
	for i := 0; i < len(toks); i++ {
		if toks[i].kind != tokIdent || toks[i].text != "MON" {
			continue
		}
		args, end, ok := callArgs(toks, i)
		if !ok || len(args) == 0 {
			continue
		}
		i = end
		if name := argString(args[0]); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no MON entries found")
	}
	return names, nil
}

// ParseObjects returns the object table of an objects.c style source in
// declaration order. The class-less terminator entry is dropped.
func ParseObjects(src string, defines map[string]bool) ([]importer.ObjectSpec, error) {
	toks := lex(src, defines)
	var objs []importer.ObjectSpec
	for i := 0; i < len(toks); i++ {
		if toks[i].kind != tokIdent {
			continue
		}
		name := toks[i].text
		if name == "OBJECT" {
			args, end, ok := callArgs(toks, i)
			if !ok || len(args) == 0 {
				continue
			}
			i = end
			obj, ok := plainObject(args)
			if ok {
				objs = append(objs, obj)
			}
			continue
		}
		macro, known := objectMacros[name]
		if !known {
			continue
		}
		args, end, ok := callArgs(toks, i)
		if !ok || len(args) == 0 {
			continue
		}
		i = end
		obj := importer.ObjectSpec{Name: argString(args[0]), Class: macro.class}
		if macro.hasDesc && len(args) > 1 {
			obj.Description = argString(args[1])
		}
		objs = append(objs, obj)
	}
	if len(objs) == 0 {
		return nil, fmt.Errorf("no object entries found")
	}
	return objs, nil
}

// plainObject reads OBJECT(OBJ(name, desc), ..., CLASS, ...).
func plainObject(args [][]token) (importer.ObjectSpec, bool) {
	var obj importer.ObjectSpec
	head := args[0]
	if len(head) > 0 && head[0].kind == tokIdent && head[0].text == "OBJ" {
		inner, _, ok := callArgs(head, 0)
		if ok && len(inner) > 0 {
			obj.Name = argString(inner[0])
			if len(inner) > 1 {
				obj.Description = argString(inner[1])
			}
		}
	}
	for _, arg := range args[1:] {
		for _, t := range arg {
			if t.kind != tokIdent {
				continue
			}
			if class, ok := classConstants[t.text]; ok {
				obj.Class = class
				return obj, true
			}
		}
	}
	return obj, false
}
