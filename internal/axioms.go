package internal

import "math"

// The axioms in canonical argument order. Axiom 6 lives in parabola.go.
//
// Nothing here may call Fold: the dispatch table refers to these functions, so
// that would be an initialization cycle. Fused cases call the smaller axioms
// directly instead.

// Axiom 1: the crease through two points. Each point is given twice, since a
// point folded onto itself is a point the crease passes through. When a pair
// doesn't match, that pair is a point-onto-point constraint instead.
func foldThroughPoints(p1, q1, p2, q2 Point) Creases {
	if p1.Equal(q1) && q1.Equal(p2) && p2.Equal(q2) {
		fatalf(ErrDegenerate, "folding through the single point %v defines infinitely many creases", p1)
	}

	if p1.Equal(q1) && p2.Equal(q2) {
		return single(LineThrough(p1, p2))
	}

	// p2 onto q2, through p1
	if p1.Equal(q1) {
		crease := foldPointOntoPoint(p2, q2)
		if p1.IsOn(crease) {
			return single(crease)
		}
		return nil
	}

	// ... and the mirror image
	if p2.Equal(q2) {
		crease := foldPointOntoPoint(p1, q1)
		if p2.IsOn(crease) {
			return single(crease)
		}
		return nil
	}

	// Two independent point-onto-point folds only agree if they are the same
	// crease
	crease1 := foldPointOntoPoint(p1, q1)
	crease2 := foldPointOntoPoint(p2, q2)
	if crease1.Equal(crease2) {
		return single(crease1)
	}
	return nil
}

// Axiom 2: fold p1 onto p2. The crease is the perpendicular bisector.
func foldPointOntoPoint(p1, p2 Point) Line {
	if p1.Equal(p2) {
		fatalf(ErrDegenerate, "folding %v onto itself defines infinitely many creases", p1)
	}

	gradient := Inverse(LineThrough(p1, p2).Gradient())
	return LineWithGradient(Midpoint(p1, p2), gradient)
}

// Axiom 3: fold line1 onto line2. Parallel lines give the single line midway
// between them; crossing lines give both angle bisectors.
func foldLineOntoLine(line1, line2 Line) Creases {
	if line1.Equal(line2) {
		fatalf(ErrDegenerate, "folding %v onto itself defines infinitely many creases", line1)
	}

	if line1.Parallel(line2) {
		p1, _ := twoPointsOn(line1)
		p2, _ := twoPointsOn(line2)
		return single(LineWithGradient(Midpoint(p1, p2), line1.Gradient()))
	}

	intersection, _ := line1.Intersection(line2)

	// The bisectors satisfy
	//   (a1·x + b1·y + c1) / |(a1, b1)| = ± (a2·x + b2·y + c2) / |(a2, b2)|
	// The + case gives us a gradient directly, and the - case is the
	// perpendicular through the intersection.
	norm1 := math.Hypot(line1.a, line1.b)
	norm2 := math.Hypot(line2.a, line2.b)

	a := line1.a*norm2 - line2.a*norm1
	b := line1.b*norm2 - line2.b*norm1

	gradient := math.Inf(1)
	if !Equal(b, 0) {
		gradient = -a / b
	}

	return Creases{
		LineWithGradient(intersection, gradient),
		LineWithGradient(intersection, Inverse(gradient)),
	}
}

// Axiom 4: through a point, perpendicular to a line. As with axiom 1, the
// point and the line are each given twice, and mismatched pairs become
// point-onto-point or line-onto-line constraints.
func foldThroughPointPerpendicular(p1, p2 Point, line1, line2 Line) Creases {
	if p1.Equal(p2) && line1.Equal(line2) {
		return single(LineWithGradient(p1, Inverse(line1.Gradient())))
	}

	// p1 onto p2, perpendicular to the line
	if line1.Equal(line2) {
		crease := foldPointOntoPoint(p1, p2)
		if gradientsEqual(crease.Gradient(), Inverse(line1.Gradient())) {
			return single(crease)
		}
		return nil
	}

	// line1 onto line2, through the point
	if p1.Equal(p2) {
		return foldLineOntoLine(line1, line2).filter(p1.IsOn)
	}

	// p1 onto p2 and line1 onto line2. The point fold is unique, so at most one
	// of the line folds can match it.
	crease := foldPointOntoPoint(p1, p2)
	if foldLineOntoLine(line1, line2).Contains(crease) {
		return single(crease)
	}
	return nil
}

// Axiom 5: fold p1 onto the line, with the crease through p2 (given twice, p2
// and p3). If p2 and p3 differ, the second constraint is p2 onto p3.
func foldPointOntoLineThroughPoint(p1 Point, line Line, p2, p3 Point) Creases {
	if p1.IsOn(line) && p2.Equal(p3) {
		fatalf(ErrDegenerate, "%v is already on %v, giving infinitely many creases", p1, line)
	}

	if p1.Equal(p2) && p2.Equal(p3) {
		return nil
	}

	if !p2.Equal(p3) {
		crease := foldPointOntoPoint(p2, p3)
		if p1.IsOn(line) || reflectPoint(p1, crease).IsOn(line) {
			return single(crease)
		}
		return nil
	}

	// p1 must land on the line at a point as far from p2 as p1 is, so it lands
	// where the circle around p2 through p1 meets the line.
	radius := distancePointToPoint(p1, p2)
	pivotDistance := distancePointToLine(p2, line)

	switch {
	case Equal(radius, pivotDistance):
		// Tangent
		return single(foldPointOntoPoint(p1, Projection(p2, line)))
	case radius < pivotDistance:
		// p2 is too far from the line
		return nil
	}

	// Circle-line intersection for a circle centered on the origin, from
	// https://mathworld.wolfram.com/Circle-LineIntersection.html. The line is
	// translated so that p2 is the origin, and the results translated back.
	l1, l2 := twoPointsOn(line)
	l1 = Point{l1.X - p2.X, l1.Y - p2.Y}
	l2 = Point{l2.X - p2.X, l2.Y - p2.Y}

	dx := l2.X - l1.X
	dy := l2.Y - l1.Y
	dr2 := dx*dx + dy*dy
	d := l1.X*l2.Y - l2.X*l1.Y
	sgn := 1.0
	if dy < 0 {
		sgn = -1
	}

	discRoot := math.Sqrt(math.Max(0, radius*radius*dr2-d*d))

	q1 := Point{
		X: (d*dy+sgn*dx*discRoot)/dr2 + p2.X,
		Y: (-d*dx+math.Abs(dy)*discRoot)/dr2 + p2.Y,
	}
	q2 := Point{
		X: (d*dy-sgn*dx*discRoot)/dr2 + p2.X,
		Y: (-d*dx-math.Abs(dy)*discRoot)/dr2 + p2.Y,
	}

	return Creases{
		foldPointOntoPoint(p1, q1),
		foldPointOntoPoint(p1, q2),
	}
}

// Axiom 7: fold p onto line1 with the crease perpendicular to line2 (given
// twice, line2 and line3). If line2 and line3 differ, the second constraint is
// line2 onto line3.
func foldPointOntoLinePerpendicular(p Point, line1, line2, line3 Line) Creases {
	if !line2.Equal(line3) {
		return foldLineOntoLine(line2, line3).filter(func(crease Line) bool {
			return p.IsOn(line1) || reflectPoint(p, crease).IsOn(line1)
		})
	}

	if p.IsOn(line1) {
		fatalf(ErrDegenerate, "%v is already on %v, giving infinitely many creases", p, line1)
	}

	// The fold moves p along a line perpendicular to the crease, which is a
	// line parallel to line2. If line1 is also parallel to line2, p can never
	// reach it.
	if line1.Parallel(line2) {
		return nil
	}

	parallel := LineWithGradient(p, line2.Gradient())
	target, _ := parallel.Intersection(line1)

	return single(LineWithGradient(Midpoint(p, target), Inverse(line2.Gradient())))
}
