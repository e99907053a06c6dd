package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestCubicRoots(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	cases := []struct {
		name           string
		c0, c1, c2, c3 float64
		want           []float64
	}{
		{"three roots", -6, 11, -6, 1, []float64{1, 2, 3}},
		{"scaled", -12, 22, -12, 2, []float64{1, 2, 3}},
		{"double root", 2, -3, 0, 1, []float64{-2, 1}},
		{"triple root", -1, 3, -3, 1, []float64{1}},
		{"one real root", -1, 0, 0, 1, []float64{1}},
		{"root at zero", 0, -1, 0, 1, []float64{-1, 0, 1}},
		{"quadratic", -1, 0, 1, 0, []float64{-1, 1}},
		{"quadratic double root", 1, -2, 1, 0, []float64{1}},
		{"negligible cubic term", -1, 0, 1, 1e-12, []float64{-1, 1}},
		{"linear", 2, -1, 0, 0, []float64{2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			diff(t, c.want, cubicRoots(c.c0, c.c1, c.c2, c.c3), approx)
		})
	}

	t.Run("no real roots", func(t *testing.T) {
		assert.Empty(t, cubicRoots(1, 0, 1, 0))
	})

	t.Run("constant", func(t *testing.T) {
		assert.Empty(t, cubicRoots(3, 0, 0, 0))
	})

	t.Run("zero polynomial", func(t *testing.T) {
		assert.Nil(t, cubicRoots(0, 0, 0, 0))
	})
}

func TestCubicRootsAreRoots(t *testing.T) {
	cs := []float64{0.3, -1.7, 0.2, 1.1}
	roots := cubicRoots(cs[0], cs[1], cs[2], cs[3])
	assert.Len(t, roots, 3)
	for _, r := range roots {
		assert.InDelta(t, 0, evalPolynomial(cs, r), 1e-9, "root %g", r)
	}
}

func TestNormalizePolynomial(t *testing.T) {
	diff(t, []float64{0.5, 0, -1}, normalizePolynomial([]float64{2, 1e-12, -4}))
	assert.Nil(t, normalizePolynomial([]float64{0, 0}))
}

func TestMergeRoots(t *testing.T) {
	diff(t, []float64{-1, 2}, mergeRoots([]float64{2, -1, 2 + 1e-9}))
}
