package textview

import (
	"regexp"
	"strings"
)

// Markers that end a message spanning several terminal rows.
const (
	MoreMarker = "--More--"
	EndMarker  = "(end)"
)

var pageCounter = regexp.MustCompile(`\(\d+ of \d+\)`)

// trimSet is stripped from both ends of each message row.
const trimSet = " \x00\x1a\n\r\t\f\v"

// IsMultipageEnd reports whether a row closes a multi-row message.
func IsMultipageEnd(row string) bool {
	return strings.Contains(row, MoreMarker) ||
		strings.Contains(row, EndMarker) ||
		pageCounter.MatchString(row)
}

// Message extracts the message or menu text from the terminal rows.
//
// The indent of the first row is cut from every row so map columns left of a
// menu are dropped. If some row holds a page counter, "--More--" or "(end)",
// every row up to and including it is returned joined with newlines;
// otherwise only the first row is returned.
//
// Postcondition: returns "" when the first row is blank.
func Message(rows [][]byte) string {
	if len(rows) == 0 {
		return ""
	}
	first := latin1(rows[0])
	indent := strings.IndexFunc(first, func(r rune) bool { return r != ' ' })
	if indent < 0 {
		return ""
	}

	lines := make([]string, 0, len(rows))
	for i, raw := range rows {
		row := latin1(raw)
		if indent < len([]rune(row)) {
			row = string([]rune(row)[indent:])
		} else {
			row = ""
		}
		row = strings.Trim(row, trimSet)
		if i == 0 && row == "" {
			return ""
		}
		lines = append(lines, row)
		if IsMultipageEnd(row) {
			return strings.Join(lines, "\n")
		}
	}
	return lines[0]
}
