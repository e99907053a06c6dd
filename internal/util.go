package internal

import "math"

const Tolerance = 1e-10

// To compensate for imprecision in floats, equality is tolerance based. Without
// this, a point computed as the intersection of two creases would almost never
// compare equal to the point it was folded from.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Gradients are either finite or +Inf for vertical lines. -Inf never comes
// out of Line.Gradient, but callers may pass it in, so treat any infinity as
// vertical.
func gradientsEqual(m1, m2 float64) bool {
	if math.IsInf(m1, 0) || math.IsInf(m2, 0) {
		return math.IsInf(m1, 0) && math.IsInf(m2, 0)
	}
	return Equal(m1, m2)
}

// Remove duplicates from a list of lines, using tolerant equality. Lines aren't
// usable as map keys for this, since nearby values must collapse.
func uniqueLines(lines []Line) []Line {
	unique := make([]Line, 0, len(lines))
	for _, line := range lines {
		if !containsLine(unique, line) {
			unique = append(unique, line)
		}
	}
	return unique
}

func uniquePoints(points []Point) []Point {
	unique := make([]Point, 0, len(points))
outer:
	for _, p := range points {
		for _, u := range unique {
			if p.Equal(u) {
				continue outer
			}
		}
		unique = append(unique, p)
	}
	return unique
}

func containsLine(lines []Line, line Line) bool {
	for _, l := range lines {
		if l.Equal(line) {
			return true
		}
	}
	return false
}
