package internal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Equal(p2)
})

var lineComparer = cmp.Comparer(func(l1, l2 Line) bool {
	return l1.Equal(l2)
})

func TestEqual(t *testing.T) {
	assert.True(t, Equal(0, .4-.3-.1))
	assert.False(t, Equal(0, 1e-9))
}

func TestUniqueLines(t *testing.T) {
	lines := []Line{
		LineFromGradient(1),
		NewLine(-2, 2, 0),
		NewLine(0, 1, -1),
		LineFromGradient(1),
	}
	diff(t, []Line{LineFromGradient(1), NewLine(0, 1, -1)}, uniqueLines(lines), lineComparer)
}

func TestGradientsEqual(t *testing.T) {
	assert.True(t, gradientsEqual(inf, math.Inf(-1)))
	assert.False(t, gradientsEqual(inf, 1e300))
	assert.True(t, gradientsEqual(2, 2+1e-12))
}

// Rounding error, computed at run time. Written as a constant expression the
// compiler would evaluate it exactly and get zero.
func roundingNoise() float64 {
	a, b, c := .4, .3, .1
	return a - b - c
}

func TestNearlyZero(t *testing.T) {
	assert.NotZero(t, roundingNoise())
	assert.Less(t, math.Abs(roundingNoise()), Tolerance)
}

func TestUniquePoints(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(1, 1), Pt(roundingNoise(), 0), Pt(1, 1)}
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, uniquePoints(points), pointComparer)
}
