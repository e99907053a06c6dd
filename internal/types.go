package internal

// Points and lines are small immutable values. They are passed and returned by
// value everywhere, so copying one is all it takes to clone it.

type Point struct {
	X float64
	Y float64
}

// Line is the general-form equation a·x + b·y + c = 0. The coefficients are
// kept in canonical form (see NewLine) and are only reachable through
// accessors, so a Line can never hold a non-canonical triple.
type Line struct {
	a, b, c float64
}

// Kind tags an Operand as a point or a line.
type Kind int

const (
	PointKind Kind = iota
	LineKind
)

func (k Kind) String() string {
	switch k {
	case PointKind:
		return "Point"
	case LineKind:
		return "Line"
	}
	return "Unknown"
}

// Operand is the closed union of the things that can be folded: a Point or a
// Line. The unexported method keeps other types out.
type Operand interface {
	Kind() Kind
	isOperand()
}

func (Point) Kind() Kind { return PointKind }
func (Point) isOperand() {}
func (Line) Kind() Kind  { return LineKind }
func (Line) isOperand()  {}

var (
	_ Operand = Point{}
	_ Operand = Line{}
)
