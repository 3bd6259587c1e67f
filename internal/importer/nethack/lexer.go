package nethack

import (
	"strings"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokString
	tokPunct
	tokNumber
)

type token struct {
	kind tokenKind
	text string
}

// condFrame is one open #if/#ifdef block.
type condFrame struct {
	parentActive bool
	active       bool
	taken        bool
}

// lexer tokenizes C source closely enough to read static initializer tables.
// Comments are dropped, #define and #include lines are skipped, and
// conditional blocks are resolved against defines.
type lexer struct {
	src     string
	pos     int
	defines map[string]bool
	conds   []condFrame
	bol     bool
}

func lex(src string, defines map[string]bool) []token {
	l := &lexer{src: src, defines: defines, bol: true}
	var toks []token
	for {
		tok, ok := l.next()
		if !ok {
			return toks
		}
		if l.active() {
			toks = append(toks, tok)
		}
	}
}

func (l *lexer) active() bool {
	if len(l.conds) == 0 {
		return true
	}
	return l.conds[len(l.conds)-1].active
}

func (l *lexer) next() (token, bool) {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.pos++
			l.bol = true
			continue
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			l.pos++
			continue
		case c == '#' && l.bol:
			l.directive()
			continue
		case strings.HasPrefix(l.src[l.pos:], "/*"):
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += end + 4
			}
			continue
		case strings.HasPrefix(l.src[l.pos:], "//"):
			l.skipLine()
			continue
		}

		l.bol = false
		switch {
		case c == '"':
			return token{kind: tokString, text: l.stringLit()}, true
		case c == '\'':
			l.charLit()
			return token{kind: tokNumber, text: "'"}, true
		case isIdentStart(c):
			start := l.pos
			for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
				l.pos++
			}
			return token{kind: tokIdent, text: l.src[start:l.pos]}, true
		case c >= '0' && c <= '9':
			start := l.pos
			for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
				l.pos++
			}
			return token{kind: tokNumber, text: l.src[start:l.pos]}, true
		default:
			l.pos++
			return token{kind: tokPunct, text: string(c)}, true
		}
	}
	return token{}, false
}

// logicalLine returns the rest of the current line with backslash
// continuations joined and comments removed, and consumes it.
func (l *lexer) logicalLine() string {
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\\' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '\n' {
			l.pos += 2
			b.WriteByte(' ')
			continue
		}
		if c == '\n' {
			break
		}
		if strings.HasPrefix(l.src[l.pos:], "/*") {
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				l.pos = len(l.src)
				break
			}
			l.pos += end + 4
			b.WriteByte(' ')
			continue
		}
		if strings.HasPrefix(l.src[l.pos:], "//") {
			l.skipLine()
			break
		}
		b.WriteByte(c)
		l.pos++
	}
	return b.String()
}

func (l *lexer) skipLine() {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
}

func (l *lexer) directive() {
	l.pos++ // '#'
	line := strings.TrimSpace(l.logicalLine())
	name := firstWord(line)
	rest := strings.TrimSpace(line[len(name):])

	switch name {
	case "if":
		l.push(l.eval(rest))
	case "ifdef":
		l.push(l.defines[firstWord(rest)])
	case "ifndef":
		l.push(!l.defines[firstWord(rest)])
	case "elif":
		if n := len(l.conds); n > 0 {
			f := &l.conds[n-1]
			f.active = f.parentActive && !f.taken && l.eval(rest)
			f.taken = f.taken || f.active
		}
	case "else":
		if n := len(l.conds); n > 0 {
			f := &l.conds[n-1]
			f.active = f.parentActive && !f.taken
			f.taken = true
		}
	case "endif":
		if n := len(l.conds); n > 0 {
			l.conds = l.conds[:n-1]
		}
	}
}

func (l *lexer) push(cond bool) {
	parent := l.active()
	active := parent && cond
	l.conds = append(l.conds, condFrame{parentActive: parent, active: active, taken: active})
}

// eval understands 0, 1, defined(X), !defined(X) and conjunctions of those.
// Anything else is treated as true.
func (l *lexer) eval(expr string) bool {
	expr = strings.TrimSpace(expr)
	if strings.Contains(expr, "||") {
		for _, part := range strings.Split(expr, "||") {
			if l.eval(part) {
				return true
			}
		}
		return false
	}
	if strings.Contains(expr, "&&") {
		for _, part := range strings.Split(expr, "&&") {
			if !l.eval(part) {
				return false
			}
		}
		return true
	}
	switch {
	case expr == "0":
		return false
	case strings.HasPrefix(expr, "!"):
		return !l.eval(expr[1:])
	case strings.HasPrefix(expr, "defined"):
		sym := strings.Trim(strings.TrimPrefix(expr, "defined"), " ()")
		return l.defines[sym]
	case strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")"):
		return l.eval(expr[1 : len(expr)-1])
	}
	return true
}

func (l *lexer) stringLit() string {
	l.pos++ // opening quote
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		l.pos++
		switch c {
		case '"':
			return b.String()
		case '\\':
			if l.pos < len(l.src) {
				b.WriteByte(unescape(l.src[l.pos]))
				l.pos++
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (l *lexer) charLit() {
	l.pos++
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		l.pos++
		if c == '\\' {
			l.pos++
			continue
		}
		if c == '\'' {
			return
		}
	}
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '0':
		return 0
	}
	return c
}

func firstWord(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
