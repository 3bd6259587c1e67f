package action

import "fmt"

// ParseNotation converts key notation to the byte the terminal sends.
// "^x" is control-x, "M-x" sets the meta bit, anything else must be a single
// character.
//
// Postcondition: returns an error for empty or multi-character notations.
func ParseNotation(n string) (byte, error) {
	switch {
	case len(n) == 2 && n[0] == '^':
		return n[1] & 0x1f, nil
	case len(n) == 3 && n[:2] == "M-":
		return n[2] | 0x80, nil
	case len(n) == 1:
		return n[0], nil
	}
	return 0, fmt.Errorf("invalid key notation %q", n)
}
