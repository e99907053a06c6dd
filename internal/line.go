package internal

import (
	"fmt"
	"math"
)

// A line a·x + b·y + c = 0 can be scaled by any non-zero constant and still be
// the same line. To give every line a single representation we scale so that:
//
//   - c = 1, if c is non-zero;
//   - otherwise b = 1 (and c = 0), if b is non-zero;
//   - otherwise the line is the vertical through the origin: a = 1, b = c = 0.
//
// The four constructors below all produce this form. Note that the checks are
// exact on purpose: a point a hair away from the origin gives a line with a
// huge c-scaled representation, which then compares unequal to the line
// through the origin. See Line.Equal.

// NewLine builds a line from the coefficients of its general-form equation.
func NewLine(a, b, c float64) Line {
	if !finite(a, b, c) {
		fatalf(ErrInvalidLine, "coefficients must be finite, got (%g, %g, %g)", a, b, c)
	}
	if a == 0 && b == 0 {
		fatalf(ErrInvalidLine, "one of a or b must be non-zero")
	}

	if c != 0 {
		return Line{a / c, b / c, 1}
	}

	// With c == 0 we may scale to get b == 1
	if b != 0 {
		return Line{a / b, 1, 0}
	}

	// Vertical through the origin
	return Line{1, 0, 0}
}

// LineThrough builds the line through two distinct points.
func LineThrough(p1, p2 Point) Line {
	if !finite(p1.X, p1.Y, p2.X, p2.Y) {
		fatalf(ErrInvalidLine, "points must be finite, got %v and %v", p1, p2)
	}
	if p1.Equal(p2) {
		fatalf(ErrInvalidLine, "points must be distinct to define a line, got %v twice", p1)
	}

	if p1.X == p2.X {
		return LineWithGradient(p1, math.Inf(1))
	}

	if p1.Y == p2.Y {
		return LineWithGradient(p1, 0)
	}

	return LineWithGradient(p1, (p1.Y-p2.Y)/(p1.X-p2.X))
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// LineWithGradient builds the line through p with the given gradient. An
// infinite gradient means the line is vertical.
func LineWithGradient(p Point, gradient float64) Line {
	if math.IsInf(gradient, 0) {
		if p.X == 0 {
			return Line{1, 0, 0}
		}
		return Line{-1 / p.X, 0, 1}
	}

	yIntercept := p.Y - gradient*p.X

	// Crosses the origin
	if yIntercept == 0 {
		return Line{-gradient, 1, 0}
	}

	return Line{gradient / yIntercept, -1 / yIntercept, 1}
}

// LineFromGradient builds the line through the origin with the given gradient.
func LineFromGradient(gradient float64) Line {
	return LineWithGradient(Point{}, gradient)
}

func (l Line) A() float64 { return l.a }
func (l Line) B() float64 { return l.b }
func (l Line) C() float64 { return l.c }

func (l Line) Coefficients() (a, b, c float64) {
	return l.a, l.b, l.c
}

func (l Line) String() string {
	return fmt.Sprintf("L(%g, %g, %g)", l.a, l.b, l.c)
}

// Equal compares the canonical coefficients within Tolerance.
//
// A small error near the origin can become an arbitrarily large error far away
// along an infinite line, and with this representation it shows up as blown up
// coefficients. So two derivations of "the same" line may compare unequal. In
// practice lines computed within a sensible folding area compare fine.
func (l Line) Equal(o Line) bool {
	return Equal(l.a, o.a) && Equal(l.b, o.b) && Equal(l.c, o.c)
}

// Gradient is rise over run, or +Inf for vertical lines.
func (l Line) Gradient() float64 {
	if l.b == 0 {
		return math.Inf(1)
	}
	return -l.a / l.b
}

func (l Line) IsVertical() bool {
	return l.b == 0
}

func (l Line) Parallel(o Line) bool {
	return gradientsEqual(l.Gradient(), o.Gradient())
}

// Intersection returns the point where two lines cross. The second return
// value is false if the lines are parallel (including coincident).
func (l Line) Intersection(o Line) (Point, bool) {
	if l.Parallel(o) {
		return Point{}, false
	}

	var x, y float64
	switch {
	case l.b == 0:
		x = -l.c / l.a
		y = (o.a*l.c - l.a*o.c) / (l.a * o.b)
	case o.b == 0:
		x = -o.c / o.a
		y = (l.a*o.c - o.a*l.c) / (o.a * l.b)
	default:
		divisor := (o.Gradient() - l.Gradient()) * l.b * o.b
		x = (l.b*o.c - o.b*l.c) / divisor
		y = (o.a*l.c - l.a*o.c) / divisor
	}
	return Point{x, y}, true
}
