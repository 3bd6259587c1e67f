package action

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned when text names no supported action.
var ErrUnknownAction = errors.New("is not recognized or not supported")

// Registry maps action names, aliases and key notations to Action definitions.
type Registry struct {
	actions   map[string]*Action // canonical name → action
	aliases   map[string]string  // alias → canonical name
	notations map[string]string  // key notation → canonical name, first registered wins
	order     []string
}

// NewRegistry creates a Registry populated with the given actions.
//
// Precondition: No two actions may share a canonical name or alias, and every
// notation must parse.
// Postcondition: Returns a Registry or an error on collisions or bad notation.
func NewRegistry(actions []Action) (*Registry, error) {
	r := &Registry{
		actions:   make(map[string]*Action, len(actions)),
		aliases:   make(map[string]string),
		notations: make(map[string]string),
	}

	for i := range actions {
		a := &actions[i]
		if _, err := a.Key(); err != nil {
			return nil, fmt.Errorf("action %q: %w", a.Name, err)
		}
		if _, exists := r.actions[a.Name]; exists {
			return nil, fmt.Errorf("duplicate action name: %q", a.Name)
		}
		if _, exists := r.aliases[a.Name]; exists {
			return nil, fmt.Errorf("action name %q conflicts with an existing alias", a.Name)
		}
		r.actions[a.Name] = a
		r.order = append(r.order, a.Name)

		for _, alias := range a.Aliases {
			if _, exists := r.actions[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with action name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, a.Name)
			}
			r.aliases[alias] = a.Name
		}
		if _, exists := r.notations[a.Notation]; !exists {
			r.notations[a.Notation] = a.Name
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with the full action vocabulary.
//
// Postcondition: Returns a Registry with every built-in action registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinActions())
	if err != nil {
		panic(fmt.Sprintf("building default action registry: %v", err))
	}
	return r
}

// Restrict returns a Registry holding only the named actions, for games that
// support a subset of the vocabulary.
//
// Postcondition: Returns an error wrapping ErrUnknownAction for names not in r.
func (r *Registry) Restrict(names []string) (*Registry, error) {
	subset := make([]Action, 0, len(names))
	for _, name := range names {
		a, ok := r.actions[name]
		if !ok {
			return nil, fmt.Errorf("action %q %w", name, ErrUnknownAction)
		}
		subset = append(subset, *a)
	}
	return NewRegistry(subset)
}

// Resolve looks up an action by canonical name, alias or key notation.
//
// Postcondition: Returns the action, or an error wrapping ErrUnknownAction.
func (r *Registry) Resolve(text string) (*Action, error) {
	if a, ok := r.actions[text]; ok {
		return a, nil
	}
	if canonical, ok := r.aliases[text]; ok {
		return r.actions[canonical], nil
	}
	if canonical, ok := r.notations[text]; ok {
		return r.actions[canonical], nil
	}
	return nil, fmt.Errorf("action %q %w", text, ErrUnknownAction)
}

// Actions returns all registered actions in registration order.
func (r *Registry) Actions() []*Action {
	result := make([]*Action, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.actions[name])
	}
	return result
}

// ActionsByCategory returns actions grouped by category.
func (r *Registry) ActionsByCategory() map[string][]*Action {
	categories := make(map[string][]*Action)
	for _, name := range r.order {
		a := r.actions[name]
		categories[a.Category] = append(categories[a.Category], a)
	}
	return categories
}
