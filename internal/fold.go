package internal

import (
	"log/slog"
	"strings"
)

// Fold is the entry point of the axiom engine. It accepts two or four
// operands, works out from their kinds (and order) which Huzita–Justin axiom
// they describe, and returns every crease satisfying it.
//
// Axioms 4 to 7 can be stated in more than one order ("A onto B, through C" is
// the same fold as "through C, A onto B"), so each of them has several
// signatures which reorder the operands into the canonical one.
//
// When an axiom needs two of its operands to coincide (a point paired with
// itself means "through this point"), but they don't, the constraints are
// solved separately and only creases satisfying both are kept. See the
// individual axioms.
func Fold(operands ...Operand) Creases {
	kinds := signature(operands)
	entry, ok := dispatchTable[kinds]
	if !ok {
		fatalf(ErrDispatch, "fold cannot be applied with arguments (%s)", kindList(operands))
	}

	creases := entry.fold(operands)
	Logger().Debug("fold",
		slog.String("signature", kinds),
		slog.String("axiom", entry.name),
		slog.Int("creases", len(creases)),
	)
	return creases
}

type dispatchEntry struct {
	name string
	fold func(o []Operand) Creases
}

// Keys are the operand kinds in order, P for a point and L for a line. Every
// two- and four-operand combination is listed except PL, LP and LLLL, which
// describe no axiom.
var dispatchTable = map[string]dispatchEntry{
	// axiom 2: point onto point
	"PP": {"point onto point", func(o []Operand) Creases {
		return single(foldPointOntoPoint(o[0].(Point), o[1].(Point)))
	}},
	// axiom 3: line onto line
	"LL": {"line onto line", func(o []Operand) Creases {
		return foldLineOntoLine(o[0].(Line), o[1].(Line))
	}},

	// axiom 1: through two points
	"PPPP": {"through two points", func(o []Operand) Creases {
		return foldThroughPoints(o[0].(Point), o[1].(Point), o[2].(Point), o[3].(Point))
	}},

	// axiom 4: through a point, perpendicular to a line
	"PPLL": {"through point perpendicular to line", func(o []Operand) Creases {
		return foldThroughPointPerpendicular(o[0].(Point), o[1].(Point), o[2].(Line), o[3].(Line))
	}},
	"LLPP": {"through point perpendicular to line", func(o []Operand) Creases {
		return foldThroughPointPerpendicular(o[2].(Point), o[3].(Point), o[0].(Line), o[1].(Line))
	}},

	// axiom 5: point onto a line, through a point
	"PLPP": {"point onto line through point", func(o []Operand) Creases {
		return foldPointOntoLineThroughPoint(o[0].(Point), o[1].(Line), o[2].(Point), o[3].(Point))
	}},
	"LPPP": {"point onto line through point", func(o []Operand) Creases {
		return foldPointOntoLineThroughPoint(o[1].(Point), o[0].(Line), o[2].(Point), o[3].(Point))
	}},
	"PPPL": {"point onto line through point", func(o []Operand) Creases {
		return foldPointOntoLineThroughPoint(o[2].(Point), o[3].(Line), o[0].(Point), o[1].(Point))
	}},
	"PPLP": {"point onto line through point", func(o []Operand) Creases {
		return foldPointOntoLineThroughPoint(o[3].(Point), o[2].(Line), o[0].(Point), o[1].(Point))
	}},

	// axiom 6: two points onto two lines
	"PLPL": {"two points onto two lines", func(o []Operand) Creases {
		return foldPointsOntoLines(o[0].(Point), o[1].(Line), o[2].(Point), o[3].(Line))
	}},
	"PLLP": {"two points onto two lines", func(o []Operand) Creases {
		return foldPointsOntoLines(o[0].(Point), o[1].(Line), o[3].(Point), o[2].(Line))
	}},
	"LPPL": {"two points onto two lines", func(o []Operand) Creases {
		return foldPointsOntoLines(o[1].(Point), o[0].(Line), o[2].(Point), o[3].(Line))
	}},
	"LPLP": {"two points onto two lines", func(o []Operand) Creases {
		return foldPointsOntoLines(o[1].(Point), o[0].(Line), o[3].(Point), o[2].(Line))
	}},

	// axiom 7: point onto a line, perpendicular to a line
	"PLLL": {"point onto line perpendicular to line", func(o []Operand) Creases {
		return foldPointOntoLinePerpendicular(o[0].(Point), o[1].(Line), o[2].(Line), o[3].(Line))
	}},
	"LPLL": {"point onto line perpendicular to line", func(o []Operand) Creases {
		return foldPointOntoLinePerpendicular(o[1].(Point), o[0].(Line), o[2].(Line), o[3].(Line))
	}},
	"LLPL": {"point onto line perpendicular to line", func(o []Operand) Creases {
		return foldPointOntoLinePerpendicular(o[2].(Point), o[3].(Line), o[0].(Line), o[1].(Line))
	}},
	"LLLP": {"point onto line perpendicular to line", func(o []Operand) Creases {
		return foldPointOntoLinePerpendicular(o[3].(Point), o[2].(Line), o[0].(Line), o[1].(Line))
	}},
}

func signature(operands []Operand) string {
	var sb strings.Builder
	for _, o := range operands {
		switch o.(type) {
		case Point:
			sb.WriteByte('P')
		case Line:
			sb.WriteByte('L')
		default:
			// Only reachable through a nil Operand
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// "Point, Line, Line" for error messages
func kindList(operands []Operand) string {
	names := make([]string, len(operands))
	for i, o := range operands {
		if o == nil {
			names[i] = "nil"
			continue
		}
		names[i] = o.Kind().String()
	}
	return strings.Join(names, ", ")
}
