package describe

import (
	"slices"
	"strings"
)

// Group is one output line: a noun at one distance in one or more directions.
type Group struct {
	Noun       string
	Distance   Distance
	Directions []Direction
}

// String renders the group as "<noun> <distance> <directions>".
func (g Group) String() string {
	dirs := make([]string, len(g.Directions))
	for i, d := range g.Directions {
		dirs[i] = string(d)
	}
	return g.Noun + " " + g.Distance.String() + " " + JoinList(dirs)
}

// SortObservations orders observations farthest band first, then clockwise
// from north. The sort is stable. Observations whose band or direction is
// outside the canonical orders are dropped.
func SortObservations(obs []Observation) []Observation {
	out := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if o.Distance.String() == "" || o.Direction.Rank() < 0 {
			continue
		}
		out = append(out, o)
	}
	slices.SortStableFunc(out, func(a, b Observation) int {
		if a.Distance != b.Distance {
			return int(a.Distance) - int(b.Distance)
		}
		return a.Direction.Rank() - b.Direction.Rank()
	})
	return out
}

type groupKey struct {
	noun     string
	distance Distance
}

// GroupObservations merges sorted observations by (noun, distance) in
// first-seen order. Within a group, directions seen once stay with the noun;
// directions seen more than once move to a group for the plural noun emitted
// right after it.
//
// Precondition: obs is sorted by SortObservations.
func GroupObservations(obs []Observation, plurals map[string]string) []Group {
	var keys []groupKey
	directions := make(map[groupKey][]Direction)
	for _, o := range obs {
		k := groupKey{noun: o.Noun, distance: o.Distance}
		if _, ok := directions[k]; !ok {
			keys = append(keys, k)
		}
		directions[k] = append(directions[k], o.Direction)
	}

	var groups []Group
	for _, k := range keys {
		counts := make(map[Direction]int)
		var order []Direction
		for _, d := range directions[k] {
			if counts[d] == 0 {
				order = append(order, d)
			}
			counts[d]++
		}

		var single, multiple []Direction
		for _, d := range order {
			if counts[d] == 1 {
				single = append(single, d)
			} else {
				multiple = append(multiple, d)
			}
		}
		if len(single) > 0 {
			groups = append(groups, Group{Noun: k.noun, Distance: k.distance, Directions: single})
		}
		if len(multiple) > 0 {
			plural, ok := plurals[k.noun]
			if !ok {
				plural = Pluralize(k.noun)
			}
			groups = append(groups, Group{Noun: plural, Distance: k.distance, Directions: multiple})
		}
	}
	return groups
}

// JoinList joins items as English prose: "a", "a and b", "a, b, and c".
func JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

// FormatGroups renders one line per group, newline separated without a
// trailing newline.
func FormatGroups(groups []Group) string {
	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = g.String()
	}
	return strings.Join(lines, "\n")
}
