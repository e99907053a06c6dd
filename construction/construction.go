// Package construction evaluates origami constructions: a sheet marked with
// named points and lines, and a sequence of folds (and measurements) made on
// it. Constructions are written in YAML:
//
//	elements:
//	  a1: {point: [0, 0]}
//	  a2: {point: [0, 2]}
//	  edge: {through: [[1, 0], [1, 1]]}
//	  diagonal: {gradient: 1}
//	  base: {line: [0, 1, 0]}
//	steps:
//	  - fold: [a1, a2]
//	    as: crease
//	  - reflect: a2
//	    across: diagonal
//	    as: a3
//	  - intersect: [crease, edge]
//	    as: corner
//	  - measure: [a1, corner]
//	    as: size
//
// A fold which makes several creases names them all (as: [c1, c2]), or keeps
// one of them with pick.
package construction

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/osuushi/origametry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// The document is malformed, or refers to a name that isn't defined.
	ErrInvalidConstruction = errors.New("invalid construction")
	// A fold made a different number of creases than the step names.
	ErrCreaseCount = errors.New("unexpected number of creases")
)

type Construction struct {
	Elements map[string]Element `yaml:"elements"`
	Steps    []Step             `yaml:"steps"`
}

// Element is a point or line the sheet starts with. Exactly one of the
// constructor forms must be given:
//
//	point: [x, y]
//	line: [a, b, c]            # a·x + b·y + c = 0
//	through: [[x1, y1], [x2, y2]]
//	gradient: m                # with an optional at: [x, y], else the origin
type Element struct {
	Point    []float64   `yaml:"point,omitempty"`
	Line     []float64   `yaml:"line,omitempty"`
	Through  [][]float64 `yaml:"through,omitempty"`
	Gradient *float64    `yaml:"gradient,omitempty"`
	At       []float64   `yaml:"at,omitempty"`
}

// Step is a single action. Exactly one of Fold, Reflect, Intersect and Measure
// must be set.
type Step struct {
	Fold []string `yaml:"fold,omitempty"`
	// Index into the creases of a fold, to keep only one
	Pick *int `yaml:"pick,omitempty"`

	Reflect string `yaml:"reflect,omitempty"`
	Across  string `yaml:"across,omitempty"`

	Intersect []string `yaml:"intersect,omitempty"`
	Measure   []string `yaml:"measure,omitempty"`

	As Names `yaml:"as"`
}

// Names accepts either a single name or a list of them.
type Names []string

func (n *Names) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*n = Names{value.Value}
		return nil
	}
	var names []string
	if err := value.Decode(&names); err != nil {
		return err
	}
	*n = names
	return nil
}

func (s Step) action() (string, error) {
	var actions []string
	if s.Fold != nil {
		actions = append(actions, "fold")
	}
	if s.Reflect != "" {
		actions = append(actions, "reflect")
	}
	if s.Intersect != nil {
		actions = append(actions, "intersect")
	}
	if s.Measure != nil {
		actions = append(actions, "measure")
	}
	if len(actions) != 1 {
		return "", errors.Wrapf(ErrInvalidConstruction, "step must have exactly one action, got %v", actions)
	}
	return actions[0], nil
}

// Parse reads a construction. Unknown keys are an error, so that a typo isn't
// silently ignored.
func Parse(data []byte) (*Construction, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var c Construction
	if err := decoder.Decode(&c); err != nil {
		return nil, errors.Wrap(ErrInvalidConstruction, err.Error())
	}
	return &c, nil
}

func Load(path string) (*Construction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading construction %s", path)
	}
	return Parse(data)
}

// Result holds everything a construction defined, by name.
type Result struct {
	Values       map[string]origametry.Operand
	Measurements map[string]float64
	// Names of creases made by folds, as opposed to lines given up front or
	// found some other way
	Creases map[string]bool
	// Every name in the order it was defined. Elements come first,
	// alphabetically.
	Order []string
}

func newResult() *Result {
	return &Result{
		Values:       make(map[string]origametry.Operand),
		Measurements: make(map[string]float64),
		Creases:      make(map[string]bool),
	}
}

func (r *Result) define(name string, value origametry.Operand) error {
	if err := r.checkFree(name); err != nil {
		return err
	}
	r.Values[name] = value
	r.Order = append(r.Order, name)
	return nil
}

func (r *Result) checkFree(name string) error {
	if name == "" {
		return errors.Wrap(ErrInvalidConstruction, "empty name")
	}
	_, isValue := r.Values[name]
	_, isMeasurement := r.Measurements[name]
	if isValue || isMeasurement {
		return errors.Wrapf(ErrInvalidConstruction, "%q is already defined", name)
	}
	return nil
}

func (r *Result) lookup(name string) (origametry.Operand, error) {
	value, ok := r.Values[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidConstruction, "%q is not defined", name)
	}
	return value, nil
}

func (r *Result) lookupLine(name string) (origametry.Line, error) {
	value, err := r.lookup(name)
	if err != nil {
		return origametry.Line{}, err
	}
	line, ok := value.(origametry.Line)
	if !ok {
		return origametry.Line{}, errors.Wrapf(ErrInvalidConstruction, "%q is a %v, not a line", name, value.Kind())
	}
	return line, nil
}

// Sketch pictures every value. Creases are drawn dashed, and everything is
// labelled with its name.
func (r *Result) Sketch() *origametry.Sketch {
	sketch := &origametry.Sketch{Names: make(map[origametry.Operand]string)}
	for _, name := range r.Order {
		value, ok := r.Values[name]
		if !ok {
			continue
		}
		if r.Creases[name] {
			sketch.Creases = append(sketch.Creases, value.(origametry.Line))
		} else {
			sketch.Add(value)
		}
		sketch.Names[value] = name
	}
	return sketch
}

// Eval carries out the construction. The error names the element or step that
// failed.
func (c *Construction) Eval() (*Result, error) {
	result := newResult()

	for _, name := range slices.Sorted(maps.Keys(c.Elements)) {
		value, err := c.Elements[name].build()
		if err == nil {
			err = result.define(name, value)
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "element %s", name)
		}
	}

	for i, step := range c.Steps {
		action, err := step.action()
		if err == nil {
			err = result.apply(action, step)
		}
		if err != nil {
			if action == "" {
				return nil, errors.WithMessagef(err, "step %d", i+1)
			}
			return nil, errors.WithMessagef(err, "step %d (%s)", i+1, action)
		}
	}

	return result, nil
}

func (e Element) build() (origametry.Operand, error) {
	forms := 0
	for _, set := range []bool{e.Point != nil, e.Line != nil, e.Through != nil, e.Gradient != nil} {
		if set {
			forms++
		}
	}
	if forms != 1 {
		return nil, errors.Wrap(ErrInvalidConstruction, "element must have exactly one of point, line, through or gradient")
	}
	if e.At != nil && e.Gradient == nil {
		return nil, errors.Wrap(ErrInvalidConstruction, "at is only allowed with gradient")
	}

	switch {
	case e.Point != nil:
		return coordinates(e.Point)

	case e.Line != nil:
		if len(e.Line) != 3 {
			return nil, errors.Wrapf(ErrInvalidConstruction, "line needs 3 coefficients, got %d", len(e.Line))
		}
		return origametry.NewLine(e.Line[0], e.Line[1], e.Line[2])

	case e.Through != nil:
		if len(e.Through) != 2 {
			return nil, errors.Wrapf(ErrInvalidConstruction, "through needs 2 points, got %d", len(e.Through))
		}
		p1, err := coordinates(e.Through[0])
		if err != nil {
			return nil, err
		}
		p2, err := coordinates(e.Through[1])
		if err != nil {
			return nil, err
		}
		return origametry.LineThrough(p1, p2)
	}

	at := origametry.Pt(0, 0)
	if e.At != nil {
		var err error
		if at, err = coordinates(e.At); err != nil {
			return nil, err
		}
	}
	return origametry.LineWithGradient(at, *e.Gradient), nil
}

func coordinates(xy []float64) (origametry.Point, error) {
	if len(xy) != 2 {
		return origametry.Point{}, errors.Wrapf(ErrInvalidConstruction, "point needs 2 coordinates, got %d", len(xy))
	}
	return origametry.Pt(xy[0], xy[1]), nil
}

func (r *Result) apply(action string, step Step) error {
	switch action {
	case "fold":
		return r.fold(step)
	case "reflect":
		return r.reflect(step)
	case "intersect":
		return r.intersect(step)
	case "measure":
		return r.measure(step)
	}
	panic(fmt.Sprintf("unknown action %q", action))
}

func (r *Result) fold(step Step) error {
	operands := make([]origametry.Operand, len(step.Fold))
	for i, name := range step.Fold {
		var err error
		if operands[i], err = r.lookup(name); err != nil {
			return err
		}
	}

	creases, err := origametry.Fold(operands...)
	if err != nil {
		return err
	}

	if step.Pick != nil {
		pick := *step.Pick
		if pick < 0 || pick >= len(creases) {
			return errors.Wrapf(ErrCreaseCount, "cannot pick crease %d of %d", pick, len(creases))
		}
		creases = creases[pick : pick+1]
	}

	if len(step.As) != len(creases) {
		return errors.Wrapf(ErrCreaseCount, "fold made %d creases for %d names", len(creases), len(step.As))
	}
	for i, name := range step.As {
		if err := r.define(name, creases[i]); err != nil {
			return err
		}
		r.Creases[name] = true
	}
	return nil
}

func (r *Result) reflect(step Step) error {
	if len(step.As) != 1 {
		return errors.Wrap(ErrInvalidConstruction, "reflect needs exactly one name")
	}
	value, err := r.lookup(step.Reflect)
	if err != nil {
		return err
	}
	crease, err := r.lookupLine(step.Across)
	if err != nil {
		return err
	}

	var reflected origametry.Operand
	switch value := value.(type) {
	case origametry.Point:
		reflected, err = origametry.Reflect(value, crease)
	case origametry.Line:
		reflected, err = origametry.Reflect(value, crease)
	}
	if err != nil {
		return err
	}
	return r.define(step.As[0], reflected)
}

func (r *Result) intersect(step Step) error {
	if len(step.Intersect) != 2 || len(step.As) != 1 {
		return errors.Wrap(ErrInvalidConstruction, "intersect needs two lines and one name")
	}
	line1, err := r.lookupLine(step.Intersect[0])
	if err != nil {
		return err
	}
	line2, err := r.lookupLine(step.Intersect[1])
	if err != nil {
		return err
	}

	p, ok := line1.Intersection(line2)
	if !ok {
		return errors.Wrapf(ErrInvalidConstruction, "%s and %s are parallel", step.Intersect[0], step.Intersect[1])
	}
	return r.define(step.As[0], p)
}

func (r *Result) measure(step Step) error {
	if len(step.Measure) != 2 || len(step.As) != 1 {
		return errors.Wrap(ErrInvalidConstruction, "measure needs two operands and one name")
	}
	o1, err := r.lookup(step.Measure[0])
	if err != nil {
		return err
	}
	o2, err := r.lookup(step.Measure[1])
	if err != nil {
		return err
	}

	distance, err := origametry.Distance(o1, o2)
	if err != nil {
		return err
	}
	name := step.As[0]
	if err := r.checkFree(name); err != nil {
		return err
	}
	r.Measurements[name] = distance
	r.Order = append(r.Order, name)
	return nil
}
