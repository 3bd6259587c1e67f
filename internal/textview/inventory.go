package textview

import (
	"bytes"
	"strings"
)

// Inventory renders one "<letter>: <description>" line per inventory slot.
// Slots are read in order until the first zero letter; each description row
// ends at its first NUL byte.
func Inventory(rows [][]byte, letters []byte) string {
	var lines []string
	for i, letter := range letters {
		if letter == 0 {
			break
		}
		var text string
		if i < len(rows) {
			text = cString(rows[i])
		}
		lines = append(lines, latin1([]byte{letter})+": "+text)
	}
	return strings.Join(lines, "\n")
}

// cString returns b up to its first NUL, decoded as Latin-1.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return latin1(b)
}

// latin1 decodes terminal bytes, which are Latin-1, into UTF-8.
func latin1(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}
