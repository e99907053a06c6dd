package construction

import (
	"math"

	"github.com/pkg/errors"
)

// AdditionConstruction adds two positive lengths by folding. Segment a stands
// on the origin and segment b one unit to the right:
//
//  1. Fold the foot of a onto the top of b, which lays a down end to end with
//     b, but tilted.
//  2. Swing the tilted copy of a about the top of b until it lies along b.
//     There are two ways to do it, and the copies end at b+a and b-a.
//
// The sum is the larger of the two measurements.
func AdditionConstruction(a, b float64) *Construction {
	return &Construction{
		Elements: map[string]Element{
			"a1": {Point: []float64{0, 0}},
			"a2": {Point: []float64{0, a}},
			"b1": {Point: []float64{1, 0}},
			"b2": {Point: []float64{1, b}},
		},
		Steps: []Step{
			{Fold: []string{"a1", "b2"}, As: Names{"crease1"}},
			{Reflect: "a1", Across: "crease1", As: Names{"c1"}},
			{Reflect: "a2", Across: "crease1", As: Names{"c2"}},
			{Fold: []string{"b1", "b1", "b2", "b2"}, As: Names{"line_b"}},
			// c2 onto line b, through c1
			{Fold: []string{"c2", "line_b", "c1", "c1"}, As: Names{"crease2", "crease3"}},
			{Reflect: "c2", Across: "crease2", As: Names{"d2"}},
			{Reflect: "c2", Across: "crease3", As: Names{"e2"}},
			{Measure: []string{"b1", "d2"}, As: Names{"d"}},
			{Measure: []string{"b1", "e2"}, As: Names{"e"}},
		},
	}
}

// Addition evaluates AdditionConstruction for two positive numbers. The sum
// and the difference are the larger and smaller of the measurements d and e.
func Addition(a, b float64) (*Result, error) {
	if a <= 0 || b <= 0 {
		return nil, errors.Errorf("can only add positive numbers, got %v and %v", a, b)
	}
	return AdditionConstruction(a, b).Eval()
}

// Add folds the sum of two positive numbers.
func Add(a, b float64) (float64, error) {
	result, err := Addition(a, b)
	if err != nil {
		return 0, err
	}
	return math.Max(result.Measurements["d"], result.Measurements["e"]), nil
}
