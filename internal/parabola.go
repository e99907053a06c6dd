package internal

import "math"

// Axiom 6: fold p1 onto line1 and p2 onto line2 at the same time.
//
// Folding a point onto a line places the crease tangent to the parabola with
// the point as focus and the line as directrix. So the creases are the common
// tangents of two parabolas.
//
// A conic can be written as xᵀMx = 0 for x = (x, y, 1), with M a symmetric 3×3
// matrix. Its tangent lines u = (a, b, c) are then exactly the solutions of
// uᵀAu = 0 for A = M⁻¹, the dual conic. Common tangents are the points the two
// dual conics share.
//
// Every parabola is tangent to the line at infinity, so both duals pass through
// Q = (0, 0, 1). Any other point of a dual lies on a line through Q, which we
// write as u = d + μQ with d = (α, β, 0), the normal direction of the tangent.
// As QᵀAQ = 0, substituting gives a single solution
//
//	μ = -dᵀAd / (2·dᵀAQ)
//
// and the directions where both duals agree on μ are the roots of the
// homogeneous cubic
//
//	(dᵀA1d)(dᵀA2Q) - (dᵀA2d)(dᵀA1Q) = 0.
//
// A direction with dᵀAQ = 0 only reaches Q itself (the tangent at infinity),
// and is discarded. Since μ is free, tangents through the origin (c = 0) need
// no special treatment.
func foldPointsOntoLines(p1 Point, line1 Line, p2 Point, line2 Line) Creases {
	if p1.IsOn(line1) {
		fatalf(ErrDegenerate, "first point %v is already on %v, giving infinitely many creases", p1, line1)
	}
	if p2.IsOn(line2) {
		fatalf(ErrDegenerate, "second point %v is already on %v, giving infinitely many creases", p2, line2)
	}
	if p1.Equal(p2) && line1.Equal(line2) {
		fatalf(ErrDegenerate, "folding %v onto %v twice gives infinitely many creases", p1, line1)
	}

	dual1 := dualConic(parabolaMatrix(p1, line1))
	dual2 := dualConic(parabolaMatrix(p2, line2))

	return commonTangents(dual1, dual2)
}

type mat3 [3][3]float64

// The parabola is every point as far from the focus (p, q) as from the
// directrix a·x + b·y + c = 0. Squaring both distances and multiplying out,
// with d = a² + b²:
//
//	b²x² + a²y² - 2abxy - 2(pd + ac)x - 2(qd + bc)y + (p² + q²)d - c² = 0
func parabolaMatrix(focus Point, directrix Line) mat3 {
	a, b, c := directrix.Coefficients()
	p, q := focus.X, focus.Y
	d := a*a + b*b

	return mat3{
		{b * b, -a * b, -p*d - a*c},
		{-a * b, a * a, -q*d - b*c},
		{-p*d - a*c, -q*d - b*c, d*(p*p+q*q) - c*c},
	}
}

func (m mat3) det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse via the adjugate. The second return value is false for a singular
// matrix.
func (m mat3) inverse() (mat3, bool) {
	det := m.det()
	if det == 0 || math.IsNaN(det) {
		return mat3{}, false
	}

	var inv mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// Cofactor of (j, i), for the transpose
			r0, r1 := (j+1)%3, (j+2)%3
			c0, c1 := (i+1)%3, (i+2)%3
			inv[i][j] = (m[r0][c0]*m[r1][c1] - m[r0][c1]*m[r1][c0]) / det
		}
	}
	return inv, true
}

// Scale so the largest entry has magnitude 1 and flush rounding noise to zero.
// A conic matrix is only meaningful up to scale, so this changes nothing else.
func (m mat3) normalized() mat3 {
	var largest float64
	for _, row := range m {
		for _, v := range row {
			largest = math.Max(largest, math.Abs(v))
		}
	}
	if largest == 0 {
		return m
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] /= largest
			if math.Abs(m[i][j]) < Tolerance {
				m[i][j] = 0
			}
		}
	}
	return m
}

// uᵀMv
func (m mat3) form(u, v [3]float64) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += u[i] * m[i][j] * v[j]
		}
	}
	return sum
}

func dualConic(conic mat3) mat3 {
	inv, ok := conic.inverse()
	if !ok {
		// Only happens when the focus is on the directrix, which is checked
		// before we get here
		fatalf(ErrDegenerate, "degenerate parabola")
	}
	return inv.normalized()
}

var lineAtInfinity = [3]float64{0, 0, 1}

func commonTangents(dual1, dual2 mat3) Creases {
	// dᵀAd = A00·α² + 2·A01·αβ + A11·β² and dᵀAQ = A02·α + A12·β
	quad := func(m mat3) [3]float64 { return [3]float64{m[0][0], 2 * m[0][1], m[1][1]} }
	lin := func(m mat3) [2]float64 { return [2]float64{m[0][2], m[1][2]} }
	n1, m1 := quad(dual1), lin(dual1)
	n2, m2 := quad(dual2), lin(dual2)

	// Coefficients of α³, α²β, αβ², β³
	cubic := [4]float64{
		n1[0]*m2[0] - n2[0]*m1[0],
		n1[0]*m2[1] + n1[1]*m2[0] - n2[0]*m1[1] - n2[1]*m1[0],
		n1[1]*m2[1] + n1[2]*m2[0] - n2[1]*m1[1] - n2[2]*m1[0],
		n1[2]*m2[1] - n2[2]*m1[1],
	}

	normalized := normalizePolynomial(cubic[:])
	if normalized == nil {
		fatalf(ErrDegenerate, "the parabolas coincide, giving infinitely many creases")
	}

	// With β = 1 and t = α the cubic is c3·t³ + c2·t² + c1·t + c0. A vanishing
	// t³ term means β = 0 is a root too.
	var directions [][2]float64
	for _, t := range cubicRoots(normalized[3], normalized[2], normalized[1], normalized[0]) {
		directions = append(directions, [2]float64{t, 1})
	}
	if normalized[0] == 0 {
		directions = append(directions, [2]float64{1, 0})
	}

	var creases []Line
	for _, dir := range directions {
		length := math.Hypot(dir[0], dir[1])
		d := [3]float64{dir[0] / length, dir[1] / length, 0}

		denominator1 := dual1.form(d, lineAtInfinity)
		denominator2 := dual2.form(d, lineAtInfinity)
		if math.Abs(denominator1) < polyTolerance || math.Abs(denominator2) < polyTolerance {
			continue
		}

		mu := -dual1.form(d, d) / (2 * denominator1)
		creases = append(creases, NewLine(d[0], d[1], mu))
	}

	return uniqueLines(creases)
}
