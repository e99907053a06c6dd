package internal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCreases(t *testing.T, got Creases, want ...Line) {
	t.Helper()
	assert.True(t, got.SameSet(want), "got %v, want %v", got, Creases(want))
}

func assertNoCreases(t *testing.T, got Creases) {
	t.Helper()
	assert.True(t, got.None(), "expected no creases, got %v", got)
}

func assertFoldError(t *testing.T, kind error, operands ...Operand) {
	t.Helper()
	err := Catch(func() { Fold(operands...) })
	require.Error(t, err, "folding %s", kindList(operands))
	assert.True(t, errors.Is(err, kind), "got %v, want %v", err, kind)
}

func TestFoldThroughTwoPoints(t *testing.T) {
	t.Run("general", func(t *testing.T) {
		p1, p2 := Pt(0, 0), Pt(1, 2)
		assertCreases(t, Fold(p1, p1, p2, p2), NewLine(-2, 1, 0))
	})

	t.Run("vertical", func(t *testing.T) {
		p1, p2 := Pt(0, 0), Pt(0, 2)
		assertCreases(t, Fold(p1, p1, p2, p2), NewLine(1, 0, 0))
	})

	t.Run("horizontal", func(t *testing.T) {
		p1, p2 := Pt(0, 0), Pt(2, 0)
		assertCreases(t, Fold(p1, p1, p2, p2), NewLine(0, 1, 0))
	})

	t.Run("identical points", func(t *testing.T) {
		p := Pt(2, 0)
		assertFoldError(t, ErrDegenerate, p, p, p, p)
	})
}

func TestFoldPointOntoPoint(t *testing.T) {
	assertCreases(t, Fold(Pt(0, 0), Pt(2, 2)), NewLine(1, 1, -2))
	assertCreases(t, Fold(Pt(0, 0), Pt(2, 0)), NewLine(-1, 0, 1))
	assertCreases(t, Fold(Pt(0, 0), Pt(0, 2)), NewLine(0, -1, 1))

	assertFoldError(t, ErrDegenerate, Pt(0, 2), Pt(0, 2))
}

func TestFoldLineOntoLine(t *testing.T) {
	factor := 1 / math.Sqrt2

	t.Run("general", func(t *testing.T) {
		assertCreases(t, Fold(NewLine(-2, 1, 0), NewLine(1, 2, 1)),
			NewLine(3, 1, 1),
			NewLine(-1, 3, 1),
		)
	})

	t.Run("horizontal", func(t *testing.T) {
		want := []Line{NewLine(factor, factor-1, 1), NewLine(-factor, -factor-1, 1)}
		assertCreases(t, Fold(NewLine(0, -1, 1), NewLine(1, 1, 0)), want...)
		assertCreases(t, Fold(NewLine(1, 1, 0), NewLine(0, -1, 1)), want...)
	})

	t.Run("vertical", func(t *testing.T) {
		want := []Line{NewLine(factor-1, factor, 1), NewLine(-factor-1, -factor, 1)}
		assertCreases(t, Fold(NewLine(-1, 0, 1), NewLine(1, 1, 0)), want...)
		assertCreases(t, Fold(NewLine(1, 1, 0), NewLine(-1, 0, 1)), want...)
	})

	t.Run("parallel", func(t *testing.T) {
		assertCreases(t, Fold(NewLine(-2, 1, 0), NewLine(-1, .5, 1)), NewLine(-2, 1, 1))
		assertCreases(t, Fold(NewLine(0, 1, 0), NewLine(0, -.5, 1)), NewLine(0, -1, 1))
		assertCreases(t, Fold(NewLine(1, 0, 0), NewLine(-.5, 0, 1)), NewLine(-1, 0, 1))
	})

	t.Run("onto itself", func(t *testing.T) {
		assertFoldError(t, ErrDegenerate, NewLine(0, 2, 0), NewLine(0, 2, 0))
	})
}

func TestFoldThroughPointPerpendicularToLine(t *testing.T) {
	point := Pt(0, 5)
	line := NewLine(-2, 1, 0)
	want := NewLine(-.1, -.2, 1)

	assertCreases(t, Fold(point, point, line, line), want)
	assertCreases(t, Fold(line, line, point, point), want)

	t.Run("vertical line", func(t *testing.T) {
		point := Pt(3, 5)
		line := LineWithGradient(Pt(1, 0), inf)
		want := LineWithGradient(point, 0)
		assertCreases(t, Fold(point, point, line, line), want)
		assertCreases(t, Fold(line, line, point, point), want)
	})

	t.Run("horizontal line", func(t *testing.T) {
		point := Pt(3, 5)
		line := LineWithGradient(Pt(0, -2), 0)
		want := LineWithGradient(point, inf)
		assertCreases(t, Fold(point, point, line, line), want)
		assertCreases(t, Fold(line, line, point, point), want)
	})
}

func TestFoldPointOntoLineThroughPoint(t *testing.T) {
	t.Run("every order", func(t *testing.T) {
		moving := Pt(0, 5)
		line := LineWithGradient(Pt(2, 3), 1)
		pivot := Pt(0, 3)
		want := []Line{LineWithGradient(pivot, 1), LineWithGradient(pivot, 0)}

		assertCreases(t, Fold(moving, line, pivot, pivot), want...)
		assertCreases(t, Fold(line, moving, pivot, pivot), want...)
		assertCreases(t, Fold(pivot, pivot, moving, line), want...)
		assertCreases(t, Fold(pivot, pivot, line, moving), want...)
	})

	t.Run("vertical line", func(t *testing.T) {
		pivot := Pt(0, 2)
		assertCreases(t, Fold(Pt(-2, 2), LineFromGradient(inf), pivot, pivot),
			LineWithGradient(pivot, 1),
			LineWithGradient(pivot, -1),
		)
	})

	t.Run("single solution", func(t *testing.T) {
		pivot := Pt(2, 2)
		assertCreases(t, Fold(Pt(0, 2), LineFromGradient(0), pivot, pivot), LineWithGradient(pivot, 1))
	})

	t.Run("no solutions", func(t *testing.T) {
		pivot := Pt(1, 2)
		assertNoCreases(t, Fold(Pt(0, 2), LineFromGradient(0), pivot, pivot))
	})

	t.Run("no solutions when points are equal", func(t *testing.T) {
		pivot := Pt(0, 2)
		assertNoCreases(t, Fold(Pt(0, 2), LineFromGradient(0), pivot, pivot))
	})

	t.Run("point already on line", func(t *testing.T) {
		pivot := Pt(1, 1)
		assertFoldError(t, ErrDegenerate, Pt(2, 0), LineFromGradient(0), pivot, pivot)
	})
}

func TestFoldPointsOntoLines(t *testing.T) {
	sqrt7 := math.Sqrt(7)

	t.Run("single solution", func(t *testing.T) {
		assertCreases(t, Fold(
			Pt(-1, 0), LineWithGradient(Pt(0, -1), 0),
			Pt(1, 0), LineWithGradient(Pt(0, 1), 0),
		), LineFromGradient(1))
	})

	t.Run("three solutions in every order", func(t *testing.T) {
		p1 := Pt(0, 0)
		line1 := LineWithGradient(Pt(0, 2), 0)
		p2 := Pt(-3.5, 0.5)
		line2 := LineWithGradient(Pt(-1.5, 0), inf)
		want := []Line{
			LineWithGradient(Pt(0.5, 1), -0.5),
			LineWithGradient(Pt(-1, 1), 1),
			LineWithGradient(Pt(-2, 1), 2),
		}

		assertCreases(t, Fold(p1, line1, p2, line2), want...)
		assertCreases(t, Fold(line1, p1, p2, line2), want...)
		assertCreases(t, Fold(p1, line1, line2, p2), want...)
		assertCreases(t, Fold(line1, p1, line2, p2), want...)
	})

	t.Run("tilted parabolas", func(t *testing.T) {
		// https://math.stackexchange.com/questions/2428815
		p1 := Pt(-1, 1)
		line1 := NewLine(1, 1, 1)
		line2 := NewLine(1, -1, 1)
		p2 := Pt(1, -1)
		want := []Line{
			NewLine(0, -2, 1),
			NewLine((-1-sqrt7)/2, (3+sqrt7)/2, 1),
			NewLine((-1+sqrt7)/2, (3-sqrt7)/2, 1),
		}

		assertCreases(t, Fold(p1, line1, line2, p2), want...)
		assertCreases(t, Fold(line1, p1, line2, p2), want...)
	})

	t.Run("two points onto one line", func(t *testing.T) {
		line := LineWithGradient(Pt(0, 2), 0)
		assertCreases(t, Fold(Pt(0, 3), line, Pt(0, 1), line),
			LineWithGradient(Pt(0, 2), 1),
			LineWithGradient(Pt(0, 2), -1),
		)
	})

	t.Run("one point onto two lines", func(t *testing.T) {
		point := Pt(0, 1)
		assertCreases(t, Fold(
			point, LineWithGradient(Pt(0, 3), 1),
			point, LineWithGradient(Pt(0, 3), -1),
		), LineWithGradient(Pt(0, 2), 0))
	})

	t.Run("one point onto two parallel lines", func(t *testing.T) {
		point := Pt(0, 1)
		assertNoCreases(t, Fold(
			point, LineWithGradient(Pt(1, 0), inf),
			point, LineWithGradient(Pt(-1, 0), inf),
		))
	})

	t.Run("through origin", func(t *testing.T) {
		line := LineFromGradient(0)
		assertCreases(t, Fold(Pt(0, 1), line, Pt(0, -1), line),
			LineFromGradient(1),
			LineFromGradient(-1),
		)
	})

	t.Run("opposite points on parallel lines", func(t *testing.T) {
		p1, p2 := Pt(-1, 1), Pt(1, -1)
		assertCreases(t, Fold(p1, LineWithGradient(p2, 1), p2, LineWithGradient(p1, 1)), LineFromGradient(1))

		p1, p2 = Pt(0, 1), Pt(0, -1)
		assertCreases(t, Fold(p1, LineWithGradient(p2, 0), p2, LineWithGradient(p1, 0)), LineFromGradient(0))

		p1, p2 = Pt(-1, 0), Pt(1, 0)
		assertCreases(t, Fold(p1, LineWithGradient(p2, inf), p2, LineWithGradient(p1, inf)), LineFromGradient(inf))
	})

	t.Run("crossing parabolas facing apart", func(t *testing.T) {
		assertNoCreases(t, Fold(
			Pt(0, 0), LineWithGradient(Pt(0, -1), 0),
			Pt(0, 1), LineWithGradient(Pt(0, 2), 0),
		))
	})

	t.Run("nested parabolas", func(t *testing.T) {
		assertNoCreases(t, Fold(
			Pt(0, 0), LineWithGradient(Pt(0, 11), 0),
			Pt(0, 2), LineWithGradient(Pt(0, 3), 0),
		))
	})

	t.Run("first point already on line", func(t *testing.T) {
		assertFoldError(t, ErrDegenerate,
			Pt(0, 0), LineWithGradient(Pt(0, 0), 0),
			Pt(0, 1), LineWithGradient(Pt(0, 2), 0),
		)
	})

	t.Run("second point already on line", func(t *testing.T) {
		assertFoldError(t, ErrDegenerate,
			Pt(0, 0), LineWithGradient(Pt(0, -1), 0),
			Pt(0, 1), LineWithGradient(Pt(0, 1), 0),
		)
	})

	t.Run("same point onto same line twice", func(t *testing.T) {
		point := Pt(0, 0)
		line := LineWithGradient(Pt(0, -1), 0)
		assertFoldError(t, ErrDegenerate, point, line, point, line)
	})
}

func TestFoldPointOntoLinePerpendicularToLine(t *testing.T) {
	point := Pt(0, 0)
	target := NewLine(1, 0, -1)
	perpendicular := LineWithGradient(Pt(3.14, -1729), 1)
	want := NewLine(1, 1, -1)

	t.Run("every order", func(t *testing.T) {
		assertCreases(t, Fold(point, target, perpendicular, perpendicular), want)
		assertCreases(t, Fold(target, point, perpendicular, perpendicular), want)
		assertCreases(t, Fold(perpendicular, perpendicular, point, target), want)
		assertCreases(t, Fold(perpendicular, perpendicular, target, point), want)
	})

	t.Run("parallel lines", func(t *testing.T) {
		parallel := NewLine(1, 0, 1)
		assertNoCreases(t, Fold(point, target, parallel, parallel))
	})

	t.Run("point already on line", func(t *testing.T) {
		assertFoldError(t, ErrDegenerate, Pt(1, 0), target, perpendicular, perpendicular)
	})
}

// Mismatched pairs where an axiom expects the same operand twice
func TestFoldFusedConstraints(t *testing.T) {
	t.Run("point onto point through point", func(t *testing.T) {
		through := Pt(4, 1)
		assertCreases(t, Fold(Pt(0, 0), Pt(0, 2), through, through), NewLine(0, 1, -1))
		assertCreases(t, Fold(through, through, Pt(0, 0), Pt(0, 2)), NewLine(0, 1, -1))

		through = Pt(4, 0)
		assertNoCreases(t, Fold(Pt(0, 0), Pt(0, 2), through, through))
	})

	t.Run("point onto point twice", func(t *testing.T) {
		assertCreases(t, Fold(Pt(0, 0), Pt(0, 2), Pt(5, 0), Pt(5, 2)), NewLine(0, 1, -1))
		assertNoCreases(t, Fold(Pt(0, 0), Pt(0, 2), Pt(5, 0), Pt(6, 0)))
	})

	t.Run("point onto point perpendicular to line", func(t *testing.T) {
		line := LineFromGradient(1)
		assertCreases(t, Fold(Pt(1, 0), Pt(3, 2), line, line), LineWithGradient(Pt(2, 1), -1))

		line = LineFromGradient(-1)
		assertNoCreases(t, Fold(Pt(1, 0), Pt(3, 2), line, line))
	})

	t.Run("line onto line through point", func(t *testing.T) {
		horizontal, vertical := LineFromGradient(0), LineFromGradient(inf)

		point := Pt(1, 1)
		assertCreases(t, Fold(horizontal, vertical, point, point), LineFromGradient(1))

		point = Pt(0, 0)
		assertCreases(t, Fold(horizontal, vertical, point, point), LineFromGradient(1), LineFromGradient(-1))

		point = Pt(0, 1)
		assertNoCreases(t, Fold(horizontal, vertical, point, point))
	})

	t.Run("line onto parallel line through point", func(t *testing.T) {
		line1, line2 := NewLine(1, 0, 0), NewLine(1, 0, -2)

		point := Pt(1, 1)
		assertCreases(t, Fold(line1, line2, point, point), NewLine(1, 0, -1))

		point = Pt(0, 1)
		assertNoCreases(t, Fold(line1, line2, point, point))
	})

	t.Run("point onto point and line onto line", func(t *testing.T) {
		horizontal, vertical := LineFromGradient(0), LineFromGradient(inf)
		assertCreases(t, Fold(Pt(2, 1), Pt(1, 2), horizontal, vertical), LineFromGradient(1))
		assertNoCreases(t, Fold(Pt(0, 0), Pt(1, 2), horizontal, vertical))

		assertCreases(t, Fold(Pt(2, 1), Pt(2, 3), NewLine(0, 1, 0), NewLine(0, 1, -4)), NewLine(0, 1, -2))
	})

	t.Run("point onto line and point onto point", func(t *testing.T) {
		line := LineFromGradient(0)
		assertCreases(t, Fold(Pt(1, 2), line, Pt(5, -1), Pt(5, 3)), NewLine(0, 1, -1))
		assertNoCreases(t, Fold(Pt(1, 2), line, Pt(5, -1), Pt(0, 3)))
	})

	t.Run("point onto line and line onto line", func(t *testing.T) {
		horizontal, vertical := LineFromGradient(0), LineFromGradient(inf)

		assertCreases(t, Fold(Pt(2, 1), LineWithGradient(Pt(1, 2), 5), horizontal, vertical), LineFromGradient(1))
		assertNoCreases(t, Fold(Pt(2, 1), LineWithGradient(Pt(1, 3), 5), horizontal, vertical))

		assertCreases(t, Fold(Pt(1, 2), horizontal, NewLine(0, 1, 1), NewLine(0, 1, -3)), NewLine(0, 1, -1))
	})

	t.Run("point already on line and line onto line", func(t *testing.T) {
		horizontal, vertical := LineFromGradient(0), LineFromGradient(inf)
		assertCreases(t, Fold(Pt(1, 0), horizontal, horizontal, vertical),
			LineFromGradient(1),
			LineFromGradient(-1),
		)
	})
}

func TestFoldDispatch(t *testing.T) {
	point := Pt(0, 5)
	line1 := NewLine(0, 2, 0)
	line2 := NewLine(1, 3, 0)

	t.Run("single operand", func(t *testing.T) {
		assertFoldError(t, ErrDispatch, point)
	})

	t.Run("odd number of operands", func(t *testing.T) {
		assertFoldError(t, ErrDispatch, point, line1, line2)
	})

	t.Run("point and line", func(t *testing.T) {
		assertFoldError(t, ErrDispatch, point, line1)
		assertFoldError(t, ErrDispatch, line1, point)
	})

	t.Run("perpendicular to two lines", func(t *testing.T) {
		assertFoldError(t, ErrDispatch, line1, line1, line2, line2)
	})

	t.Run("nil operand", func(t *testing.T) {
		assertFoldError(t, ErrDispatch, point, nil)
	})

	t.Run("message names the operands", func(t *testing.T) {
		err := Catch(func() { Fold(point, line1, line2) })
		assert.Contains(t, err.Error(), "(Point, Line, Line)")
	})
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "PLLP", signature([]Operand{Pt(0, 0), LineFromGradient(0), LineFromGradient(1), Pt(1, 1)}))
	assert.Equal(t, "", signature(nil))

	// Every four-operand signature except LLLL is an axiom
	for _, kinds := range []string{"PPPP", "PPLL", "LLPP", "PLPP", "LPPP", "PPPL", "PPLP",
		"PLPL", "PLLP", "LPPL", "LPLP", "PLLL", "LPLL", "LLPL", "LLLP"} {
		assert.Contains(t, dispatchTable, kinds)
	}
	assert.NotContains(t, dispatchTable, "LLLL")
	assert.Len(t, dispatchTable, 17)
}
