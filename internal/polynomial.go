package internal

import (
	"math"
	"sort"
)

// Real roots of polynomials of degree at most 3, as needed to intersect two
// dual conics.
//
// Closed-form cubic solvers decide the number of real roots from the sign of a
// discriminant, so a double root (which is what tangent configurations
// produce) is easily lost to rounding. Instead, the roots are bracketed
// between the critical points, where the polynomial is monotonic, and a
// critical point whose value is zero within polyTolerance is taken to be a
// double root.

const polyTolerance = 1e-9

// cubicRoots returns the distinct real roots of c0 + c1·x + c2·x² + c3·x³ in
// ascending order. Coefficients are scaled so the largest has magnitude 1, and
// any below polyTolerance after scaling are treated as zero. If every
// coefficient is zero, every x is a root; that is reported as nil and the
// caller must check for it separately.
func cubicRoots(c0, c1, c2, c3 float64) []float64 {
	cs := normalizePolynomial([]float64{c0, c1, c2, c3})
	if cs == nil {
		return nil
	}

	switch degree(cs) {
	case 0:
		return nil
	case 1:
		return []float64{-cs[0] / cs[1]}
	case 2:
		return quadraticRoots(cs[0], cs[1], cs[2])
	}

	// Break the real line into monotonic pieces
	bound := 1.0
	for _, c := range cs[:3] {
		bound = math.Max(bound, 1+math.Abs(c/cs[3]))
	}
	breaks := []float64{-bound}
	criticalAt := map[int]bool{}
	for _, x := range exactQuadraticRoots(cs[1], 2*cs[2], 3*cs[3]) {
		criticalAt[len(breaks)] = true
		breaks = append(breaks, x)
	}
	breaks = append(breaks, bound)

	var roots []float64
	isRoot := make([]bool, len(breaks))
	for i, x := range breaks {
		if criticalAt[i] && nearlyZero(cs, x) {
			isRoot[i] = true
			roots = append(roots, x)
		}
	}

	for i := 0; i+1 < len(breaks); i++ {
		if isRoot[i] || isRoot[i+1] {
			// The piece is monotonic and starts or ends at a root, so it holds
			// no other.
			continue
		}
		lo, hi := breaks[i], breaks[i+1]
		fLo, fHi := evalPolynomial(cs, lo), evalPolynomial(cs, hi)
		if fLo == 0 {
			roots = append(roots, lo)
			continue
		}
		if math.Signbit(fLo) != math.Signbit(fHi) {
			roots = append(roots, bisect(cs, lo, hi, fLo))
		}
	}

	return mergeRoots(roots)
}

func normalizePolynomial(cs []float64) []float64 {
	scale := 0.0
	for _, c := range cs {
		scale = math.Max(scale, math.Abs(c))
	}
	if scale == 0 {
		return nil
	}
	out := make([]float64, len(cs))
	for i, c := range cs {
		c /= scale
		if math.Abs(c) < polyTolerance {
			c = 0
		}
		out[i] = c
	}
	return out
}

func degree(cs []float64) int {
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i] != 0 {
			return i
		}
	}
	return 0
}

func evalPolynomial(cs []float64, x float64) float64 {
	var v float64
	for i := len(cs) - 1; i >= 0; i-- {
		v = v*x + cs[i]
	}
	return v
}

// The value at x is small compared to the size of the terms that make it up.
func nearlyZero(cs []float64, x float64) bool {
	var magnitude float64
	power := 1.0
	for _, c := range cs {
		magnitude += math.Abs(c) * power
		power *= math.Abs(x)
	}
	return math.Abs(evalPolynomial(cs, x)) <= polyTolerance*magnitude
}

// quadraticRoots treats a discriminant within tolerance of zero as a double
// root.
func quadraticRoots(c0, c1, c2 float64) []float64 {
	disc := c1*c1 - 4*c2*c0
	scale := c1*c1 + math.Abs(4*c2*c0)
	switch {
	case math.Abs(disc) <= polyTolerance*scale:
		return []float64{-c1 / (2 * c2)}
	case disc < 0:
		return nil
	}
	return stableQuadratic(c0, c1, c2, disc)
}

// exactQuadraticRoots has no tolerance; it is used for critical points, where
// a missed pair only means one fewer break.
func exactQuadraticRoots(c0, c1, c2 float64) []float64 {
	if c2 == 0 {
		if c1 == 0 {
			return nil
		}
		return []float64{-c0 / c1}
	}
	disc := c1*c1 - 4*c2*c0
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-c1 / (2 * c2)}
	}
	return stableQuadratic(c0, c1, c2, disc)
}

// See https://math.stackexchange.com/questions/866331
func stableQuadratic(c0, c1, c2, disc float64) []float64 {
	q := -0.5 * (c1 + math.Copysign(math.Sqrt(disc), c1))
	root1 := q / c2
	if q == 0 {
		// c1 and c0 are both zero
		return []float64{0}
	}
	root2 := c0 / q
	if root2 < root1 {
		root1, root2 = root2, root1
	}
	return []float64{root1, root2}
}

// Bisect down to adjacent floats. fLo is the value at lo, and the value at hi
// has the opposite sign.
func bisect(cs []float64, lo, hi, fLo float64) float64 {
	for range 200 {
		mid := lo + (hi-lo)/2
		if mid == lo || mid == hi {
			break
		}
		fMid := evalPolynomial(cs, mid)
		if fMid == 0 {
			return mid
		}
		if math.Signbit(fMid) == math.Signbit(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}

// Roots found at two nearly coincident critical points are the same root.
func mergeRoots(roots []float64) []float64 {
	sort.Float64s(roots)
	var out []float64
	for _, r := range roots {
		if len(out) > 0 && math.Abs(r-out[len(out)-1]) <= 1e-7*math.Max(1, math.Abs(r)) {
			continue
		}
		out = append(out, r)
	}
	return out
}
