package internal

import (
	"fmt"
	"strings"
)

// Creases is the solution set of a fold: empty when no crease satisfies the
// constraints, otherwise one or more distinct lines in no particular order.
type Creases []Line

func single(line Line) Creases {
	return Creases{line}
}

func (cs Creases) None() bool {
	return len(cs) == 0
}

// Single returns the crease when there is exactly one.
func (cs Creases) Single() (Line, bool) {
	if len(cs) != 1 {
		return Line{}, false
	}
	return cs[0], true
}

func (cs Creases) Contains(line Line) bool {
	return containsLine(cs, line)
}

// SameSet compares two solution sets, ignoring order.
func (cs Creases) SameSet(other Creases) bool {
	if len(cs) != len(other) {
		return false
	}
	for _, line := range cs {
		if !other.Contains(line) {
			return false
		}
	}
	for _, line := range other {
		if !cs.Contains(line) {
			return false
		}
	}
	return true
}

// Keep only the creases satisfying the predicate.
func (cs Creases) filter(keep func(Line) bool) Creases {
	var out Creases
	for _, line := range cs {
		if keep(line) {
			out = append(out, line)
		}
	}
	return out
}

func (cs Creases) String() string {
	if len(cs) == 0 {
		return "none"
	}
	parts := make([]string, len(cs))
	for i, line := range cs {
		parts[i] = line.String()
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
