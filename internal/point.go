package internal

import "fmt"

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Coords() (float64, float64) {
	return p.X, p.Y
}

func (p Point) String() string {
	return fmt.Sprintf("P(%g, %g)", p.X, p.Y)
}

// Two points are equal if both coordinates are within Tolerance of each other.
func (p Point) Equal(o Point) bool {
	return Equal(p.X, o.X) && Equal(p.Y, o.Y)
}

// IsOn reports whether p lies on the line, i.e. whether p is its own
// projection onto it.
func (p Point) IsOn(line Line) bool {
	return p.Equal(Projection(p, line))
}
