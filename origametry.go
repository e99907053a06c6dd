// Computational origami for Go.
//
// This package solves the Huzita–Justin axioms: given the points and lines
// marked on a sheet of paper, it finds every crease that carries out a fold
// (point onto point, line onto line, two points onto two lines at once, and so
// on). Results are exact up to floating point, and a fold with no solution is
// not an error; it simply has no creases.
//
// Points and lines are immutable values. Lines are kept in a canonical
// general form so that equal lines compare equal.
package origametry

import (
	"iter"
	"log/slog"

	"github.com/osuushi/origametry/internal"
)

type Point = internal.Point
type Line = internal.Line
type Operand = internal.Operand
type Kind = internal.Kind
type Creases = internal.Creases

type Box = internal.Box
type Sketch = internal.Sketch

const (
	PointKind = internal.PointKind
	LineKind  = internal.LineKind
)

// Coordinates closer than this are considered equal.
const Tolerance = internal.Tolerance

// Unbounded asks PointsOnLine for an endless sequence.
const Unbounded = internal.Unbounded

// Error kinds. Every error returned by this package wraps one of these, so
// check with errors.Is.
var (
	ErrInvalidLine        = internal.ErrInvalidLine
	ErrDegenerate         = internal.ErrDegenerate
	ErrDispatch           = internal.ErrDispatch
	ErrUnsupportedOperand = internal.ErrUnsupportedOperand
)

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return internal.Pt(x, y)
}

// NewLine returns the line a·x + b·y + c = 0. At least one of a and b must be
// non-zero.
func NewLine(a, b, c float64) (line Line, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.NewLine(a, b, c), nil
}

// LineThrough returns the line through two distinct points.
func LineThrough(p1, p2 Point) (line Line, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.LineThrough(p1, p2), nil
}

// LineWithGradient returns the line through p with the given gradient. Pass
// math.Inf(1) for a vertical line. This can't fail.
func LineWithGradient(p Point, gradient float64) Line {
	return internal.LineWithGradient(p, gradient)
}

// LineFromGradient returns the line through the origin with the given
// gradient.
func LineFromGradient(gradient float64) Line {
	return internal.LineFromGradient(gradient)
}

// Fold finds every crease for a fold described by two or four operands.
//
// Two operands fold a point onto a point, or a line onto a line. Four
// operands are read as two pairs; a point or line paired with itself means the
// crease goes through that point, or is perpendicular to that line:
//
//	Fold(p1, p1, p2, p2)     // through two points
//	Fold(p, p, l, l)         // through p, perpendicular to l
//	Fold(p1, l, p2, p2)      // p1 onto l, through p2
//	Fold(p1, l1, p2, l2)     // p1 onto l1 and p2 onto l2
//	Fold(p, l1, l2, l2)      // p onto l1, perpendicular to l2
//
// The pairs may come in either order, and a pair may be given as (line,
// point) instead of (point, line). Any other combination returns an error
// wrapping ErrDispatch. A fold with infinitely many creases returns an error
// wrapping ErrDegenerate, while a fold with none returns empty Creases and a
// nil error.
func Fold(operands ...Operand) (creases Creases, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			creases = nil
			err = recoveredErr
		}
	}()
	return internal.Fold(operands...), nil
}

// Reflect mirrors a point or a line across the crease.
func Reflect[T Operand](operand T, crease Line) (result T, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.Reflect(operand, crease), nil
}

// Distance measures between two points, or a point and a line in either order.
// Two lines give an error wrapping ErrUnsupportedOperand.
func Distance(o1, o2 Operand) (distance float64, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.Distance(o1, o2), nil
}

func Midpoint(p1, p2 Point) Point {
	return internal.Midpoint(p1, p2)
}

// Projection is the closest point on the line to p.
func Projection(p Point, line Line) Point {
	return internal.Projection(p, line)
}

// Inverse is the gradient perpendicular to the given one.
func Inverse(gradient float64) float64 {
	return internal.Inverse(gradient)
}

// PointsOnLine yields n points on the line, or never stops for Unbounded.
func PointsOnLine(line Line, n int) iter.Seq[Point] {
	return internal.PointsOnLine(line, n)
}

// FindBoundingBox picks a square box which shows the points and lines.
func FindBoundingBox(points []Point, lines []Line) Box {
	return internal.FindBoundingBox(points, lines)
}

// TrimToBox returns the ends of the part of the line inside the box, or false
// if the line misses it.
func TrimToBox(line Line, box Box) (Point, Point, bool) {
	return internal.TrimToBox(line, box)
}

// SetLogger sets where the fold engine reports which axiom it used, at debug
// level. It is silent by default, and nil makes it silent again.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
