// Package translate answers description requests by dispatching each
// operation to the describer, the text views or the action registry.
package translate

import (
	"fmt"

	"github.com/cory-johannsen/glyphspeak/internal/action"
	"github.com/cory-johannsen/glyphspeak/internal/describe"
	"github.com/cory-johannsen/glyphspeak/internal/observation"
	"github.com/cory-johannsen/glyphspeak/internal/textview"
)

// Texts is the full language rendering of one snapshot.
type Texts struct {
	Glyphs    string `json:"text_glyphs"`
	Message   string `json:"text_message"`
	Blstats   string `json:"text_blstats"`
	Inventory string `json:"text_inventory"`
	Cursor    string `json:"text_cursor"`
}

// Keystroke is a resolved text action.
type Keystroke struct {
	Name     string `json:"name"`
	Notation string `json:"notation"`
	Key      int    `json:"key"`
}

// Translator is safe for concurrent use; it holds only immutable tables.
type Translator struct {
	describer *describe.Describer
	actions   *action.Registry
}

// New creates a Translator.
//
// Precondition: d and actions must be non-nil.
func New(d *describe.Describer, actions *action.Registry) *Translator {
	return &Translator{describer: d, actions: actions}
}

// Describer returns the glyph describer.
func (t *Translator) Describer() *describe.Describer { return t.describer }

// Glyphs describes what the player sees.
func (t *Translator) Glyphs(obs *observation.Observation) string {
	return string(t.describer.DescribeGlyphs(obs.Grid, obs.Blstats))
}

// Cursor describes the cell under the cursor.
func (t *Translator) Cursor(obs *observation.Observation) string {
	return string(t.describer.DescribeCursor(obs.Grid, obs.Blstats, obs.Cursor))
}

// Stats renders the status vector.
func (t *Translator) Stats(obs *observation.Observation) string {
	return textview.Stats(obs.Blstats)
}

// Inventory renders the inventory.
func (t *Translator) Inventory(obs *observation.Observation) string {
	return textview.Inventory(obs.InvStrs, obs.InvLetters)
}

// Message renders the message window.
func (t *Translator) Message(obs *observation.Observation) string {
	return textview.Message(obs.TTYChars)
}

// All renders every text view of a snapshot.
func (t *Translator) All(obs *observation.Observation) Texts {
	return Texts{
		Glyphs:    t.Glyphs(obs),
		Message:   t.Message(obs),
		Blstats:   t.Stats(obs),
		Inventory: t.Inventory(obs),
		Cursor:    t.Cursor(obs),
	}
}

// Action resolves a text action to its keystroke.
//
// Postcondition: Returns an error wrapping action.ErrUnknownAction for
// unsupported text.
func (t *Translator) Action(text string) (Keystroke, error) {
	a, err := t.actions.Resolve(text)
	if err != nil {
		return Keystroke{}, err
	}
	key, err := a.Key()
	if err != nil {
		return Keystroke{}, fmt.Errorf("action %q: %w", a.Name, err)
	}
	return Keystroke{Name: a.Name, Notation: a.Notation, Key: int(key)}, nil
}

// Text answers a single-text operation.
//
// Precondition: req.Op is neither OpAll nor OpAction.
// Postcondition: Returns an error wrapping observation.ErrUnknownOp otherwise.
func (t *Translator) Text(req *observation.Request) (string, error) {
	obs := &req.Observation
	switch req.Op {
	case observation.OpGlyphs:
		return t.Glyphs(obs), nil
	case observation.OpStats:
		return t.Stats(obs), nil
	case observation.OpInventory:
		return t.Inventory(obs), nil
	case observation.OpCursor:
		return t.Cursor(obs), nil
	case observation.OpMessage:
		return t.Message(obs), nil
	}
	return "", fmt.Errorf("%w %q for a single text", observation.ErrUnknownOp, req.Op)
}
