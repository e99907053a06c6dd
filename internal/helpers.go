package internal

import (
	"iter"
	"math"
)

// Midpoint returns the point halfway between two points.
func Midpoint(p1, p2 Point) Point {
	return Point{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}
}

// Inverse returns the gradient of a line perpendicular to the given gradient.
func Inverse(gradient float64) float64 {
	if gradient == 0 {
		return math.Inf(1)
	}
	if math.IsInf(gradient, 0) {
		return 0
	}
	return -1 / gradient
}

// Projection returns the closest point on the line to p.
func Projection(p Point, line Line) Point {
	perpendicular := LineWithGradient(p, Inverse(line.Gradient()))

	// Perpendicular lines always cross
	foot, _ := perpendicular.Intersection(line)
	return foot
}

// Distance returns the Euclidean distance between two points, or between a
// point and a line (in either order). Two lines have no single distance.
func Distance(o1, o2 Operand) float64 {
	switch o1 := o1.(type) {
	case Point:
		switch o2 := o2.(type) {
		case Point:
			return distancePointToPoint(o1, o2)
		case Line:
			return distancePointToLine(o1, o2)
		}
	case Line:
		if p, ok := o2.(Point); ok {
			return distancePointToLine(p, o1)
		}
	}
	fatalf(ErrUnsupportedOperand, "distance cannot be calculated for (%s)", kindList([]Operand{o1, o2}))
	return 0
}

func distancePointToPoint(p1, p2 Point) float64 {
	return math.Sqrt((p1.X-p2.X)*(p1.X-p2.X) + (p1.Y-p2.Y)*(p1.Y-p2.Y))
}

func distancePointToLine(p Point, line Line) float64 {
	return distancePointToPoint(p, Projection(p, line))
}

// Unbounded asks PointsOnLine for an endless sequence.
const Unbounded = -1

// PointsOnLine yields n distinct points on the line (or never stops, for
// Unbounded). The points are found by plugging x = 0, 1, 2, ... into the
// line's equation, or y = 0, 1, 2, ... when the line is vertical. Each range
// over the result starts again from the beginning.
func PointsOnLine(line Line, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; n == Unbounded || i < n; i++ {
			t := float64(i)
			var p Point
			if line.IsVertical() {
				p = Point{-line.c / line.a, t}
			} else {
				p = Point{t, -(line.a*t + line.c) / line.b}
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Two distinct points on a line, for when a construction needs concrete
// coordinates.
func twoPointsOn(line Line) (Point, Point) {
	var points [2]Point
	i := 0
	for p := range PointsOnLine(line, 2) {
		points[i] = p
		i++
	}
	return points[0], points[1]
}
