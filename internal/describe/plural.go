package describe

import "strings"

// massSuffixes name nouns that are already plural.
var massSuffixes = []string{"boots", "shoes", "scales", "lenses", "bars"}

var pluralExceptions = map[string]string{
	"can of grease":     "cans of grease",
	"Master of Thieves": "Masters of Thieves",
	"ice":               "area of ice",
	"lava":              "area of lava",
}

// pluralPrefixes pluralize the head word of "<head> <modifier>" nouns.
var pluralPrefixes = []struct {
	prefix string
	plural string
}{
	{"boom ", "booms "},
	{"shield ", "shields "},
	{"swallow ", "swallows "},
	{"scroll ", "scrolls "},
	{"worthless piece ", "worthless pieces "},
	{"unknown creature ", "unknown creatures "},
}

// Pluralize returns the plural of an English noun phrase as it appears in
// descriptions. Rules apply in order: mass nouns, fixed exceptions, head word
// prefixes, then regular suffix rules.
//
// Postcondition: Pluralize("") == "" and no byte before the start of noun is read.
func Pluralize(noun string) string {
	if noun == "" {
		return ""
	}
	for _, s := range massSuffixes {
		if strings.HasSuffix(noun, s) {
			return noun
		}
	}
	if p, ok := pluralExceptions[noun]; ok {
		return p
	}
	for _, p := range pluralPrefixes {
		if strings.HasPrefix(noun, p.prefix) {
			return p.plural + noun[len(p.prefix):]
		}
	}

	last := noun[len(noun)-1]
	var prev byte
	if len(noun) > 1 {
		prev = noun[len(noun)-2]
	}
	switch {
	case last == 'y' && prev != 0 && !isVowel(prev):
		return noun[:len(noun)-1] + "ies"
	case last == 'z' || last == 'x',
		prev == 'c' && last == 'h',
		prev == 's' && last == 'h',
		prev == 's' && last == 's':
		return noun + "es"
	case last == 'f' && prev == 'f':
		return noun[:len(noun)-2] + "ves"
	case last == 'f':
		return noun[:len(noun)-1] + "ves"
	case last == 's':
		return noun + "es"
	}
	return noun + "s"
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// BuildPluralLookup pluralizes every noun once.
func BuildPluralLookup(nouns []string) map[string]string {
	m := make(map[string]string, len(nouns))
	for _, n := range nouns {
		m[n] = Pluralize(n)
	}
	return m
}
