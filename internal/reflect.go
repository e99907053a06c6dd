package internal

// Reflect mirrors a point or a line across the crease, returning the same kind
// of operand it was given.
func Reflect[T Operand](o T, crease Line) T {
	switch o := any(o).(type) {
	case Point:
		return any(reflectPoint(o, crease)).(T)
	case Line:
		return any(reflectLine(o, crease)).(T)
	}
	panic("unreachable")
}

// The projection is halfway between the point and its reflection.
func reflectPoint(p Point, crease Line) Point {
	foot := Projection(p, crease)
	return Point{2*foot.X - p.X, 2*foot.Y - p.Y}
}

// Reflect two distinct points of the line and join them up again.
func reflectLine(line Line, crease Line) Line {
	p1, p2 := twoPointsOn(line)
	return LineThrough(reflectPoint(p1, crease), reflectPoint(p2, crease))
}
