// Package observation decodes game snapshots sent as single-line JSON
// requests into the typed inputs of the describers.
package observation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/cory-johannsen/glyphspeak/internal/describe"
)

// Operations a request may ask for.
const (
	OpGlyphs    = "glyphs"
	OpStats     = "stats"
	OpInventory = "inventory"
	OpCursor    = "cursor"
	OpMessage   = "message"
	OpAll       = "all"
	OpAction    = "action"
)

// Ops lists every operation in documentation order.
var Ops = []string{OpGlyphs, OpStats, OpInventory, OpCursor, OpMessage, OpAll, OpAction}

var (
	// ErrInvalidJSON is returned for request lines that are not a JSON object.
	ErrInvalidJSON = errors.New("request is not a valid JSON object")
	// ErrUnknownOp is returned for an op outside Ops.
	ErrUnknownOp = errors.New("unknown op")
	// ErrMissingField is returned when an op's required field is absent.
	ErrMissingField = errors.New("missing field")
)

// Observation is one decoded snapshot. Absent fields stay zero; Has* flags
// distinguish an absent cursor or grid from a zero one.
type Observation struct {
	Grid       describe.Grid
	HasGrid    bool
	Blstats    []int64
	Cursor     [2]int64
	HasCursor  bool
	InvStrs    [][]byte
	InvLetters []byte
	TTYChars   [][]byte
}

// Request is a decoded request line.
type Request struct {
	ID     string
	Op     string
	Action string
	Observation
}

// Parse decodes one request line.
//
// Precondition: line holds a single JSON object.
// Postcondition: Returns a Request whose Op is in Ops and whose required
// fields are present, or a non-nil error.
func Parse(line []byte) (*Request, error) {
	if !gjson.ValidBytes(line) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(line)
	if !root.IsObject() {
		return nil, ErrInvalidJSON
	}

	req := &Request{
		ID:     root.Get("id").String(),
		Op:     strings.ToLower(strings.TrimSpace(root.Get("op").String())),
		Action: root.Get("action").String(),
	}
	if req.Op == "" {
		req.Op = OpAll
	}
	if !knownOp(req.Op) {
		return nil, fmt.Errorf("%w %q", ErrUnknownOp, req.Op)
	}

	obs, err := Decode(root)
	if err != nil {
		return nil, err
	}
	req.Observation = *obs

	if err := req.requireFields(); err != nil {
		return nil, err
	}
	return req, nil
}

// Decode reads the snapshot fields from a parsed JSON object.
//
// Postcondition: Returns an error naming the first malformed field.
func Decode(root gjson.Result) (*Observation, error) {
	obs := &Observation{}

	if g := root.Get("glyphs"); g.Exists() {
		grid, err := decodeGrid(g)
		if err != nil {
			return nil, fmt.Errorf("glyphs: %w", err)
		}
		obs.Grid = grid
		obs.HasGrid = true
	}
	if b := root.Get("blstats"); b.Exists() {
		obs.Blstats = decodeInts(b)
	}
	if c := root.Get("tty_cursor"); c.Exists() {
		vals := decodeInts(c)
		if len(vals) != 2 {
			return nil, fmt.Errorf("tty_cursor: want [row, col], got %d values", len(vals))
		}
		obs.Cursor = [2]int64{vals[0], vals[1]}
		obs.HasCursor = true
	}
	if s := root.Get("inv_strs"); s.Exists() {
		obs.InvStrs = decodeRows(s)
	}
	if l := root.Get("inv_letters"); l.Exists() {
		obs.InvLetters = decodeBytes(l)
	}
	if tc := root.Get("tty_chars"); tc.Exists() {
		obs.TTYChars = decodeRows(tc)
	}
	return obs, nil
}

func knownOp(op string) bool {
	for _, o := range Ops {
		if o == op {
			return true
		}
	}
	return false
}

func (r *Request) requireFields() error {
	var missing []string
	needGrid := r.Op == OpGlyphs || r.Op == OpCursor || r.Op == OpAll
	needStats := needGrid || r.Op == OpStats
	if needGrid && !r.HasGrid {
		missing = append(missing, "glyphs")
	}
	if needStats && r.Blstats == nil {
		missing = append(missing, "blstats")
	}
	if (r.Op == OpCursor || r.Op == OpAll) && !r.HasCursor {
		missing = append(missing, "tty_cursor")
	}
	if r.Op == OpAction && r.Action == "" {
		missing = append(missing, "action")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// decodeGrid accepts Height rows of Width codes or a flat row-major array.
func decodeGrid(v gjson.Result) (describe.Grid, error) {
	if !v.IsArray() {
		return nil, errors.New("want an array")
	}
	items := v.Array()
	if len(items) > 0 && items[0].IsArray() {
		rows := make([][]int64, len(items))
		for i, row := range items {
			rows[i] = decodeInts(row)
		}
		return describe.GridFromRows(rows)
	}
	return describe.GridFromFlat(decodeInts(v))
}

func decodeInts(v gjson.Result) []int64 {
	items := v.Array()
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.Int()
	}
	return out
}

// decodeRows accepts an array of strings or an array of byte arrays.
func decodeRows(v gjson.Result) [][]byte {
	items := v.Array()
	out := make([][]byte, len(items))
	for i, item := range items {
		out[i] = decodeBytes(item)
	}
	return out
}

// decodeBytes accepts a string, whose runes are taken as Latin-1 bytes, or an
// array of byte values.
func decodeBytes(v gjson.Result) []byte {
	if v.Type == gjson.String {
		s := v.String()
		out := make([]byte, 0, len(s))
		for _, r := range s {
			if r > 0xff {
				r = '?'
			}
			out = append(out, byte(r))
		}
		return out
	}
	items := v.Array()
	out := make([]byte, len(items))
	for i, item := range items {
		out[i] = byte(item.Int())
	}
	return out
}
