package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/origametry"
	"github.com/pkg/errors"
)

var errOperandSyntax = errors.New("operands look like P:x,y  L:a,b,c  L:x1,y1:x2,y2  G:m  or G:x,y:m")

// parseOperand reads an operand from the command line:
//
//	P:x,y          the point (x, y)
//	L:a,b,c        the line a·x + b·y + c = 0
//	L:x1,y1:x2,y2  the line through two points
//	G:m            the line through the origin with gradient m
//	G:x,y:m        the line through (x, y) with gradient m
//
// Gradients may be "inf" for vertical lines. Nothing else may be infinite, and
// nothing may be NaN.
func parseOperand(s string) (origametry.Operand, error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errors.Wrapf(errOperandSyntax, "%q", s)
	}
	parts := strings.Split(rest, ":")

	var operand origametry.Operand
	var err error
	switch strings.ToUpper(kind) {
	case "P":
		if len(parts) == 1 {
			operand, err = parsePoint(parts[0])
		} else {
			err = errOperandSyntax
		}

	case "L":
		switch len(parts) {
		case 1:
			var cs []float64
			if cs, err = parseNumbers(parts[0], 3); err == nil {
				operand, err = origametry.NewLine(cs[0], cs[1], cs[2])
			}
		case 2:
			var p1, p2 origametry.Point
			if p1, err = parsePoint(parts[0]); err != nil {
				break
			}
			if p2, err = parsePoint(parts[1]); err != nil {
				break
			}
			operand, err = origametry.LineThrough(p1, p2)
		default:
			err = errOperandSyntax
		}

	case "G":
		switch len(parts) {
		case 1:
			var m float64
			if m, err = parseNumber(parts[0]); err == nil {
				operand = origametry.LineFromGradient(m)
			}
		case 2:
			var p origametry.Point
			var m float64
			if p, err = parsePoint(parts[0]); err != nil {
				break
			}
			if m, err = parseNumber(parts[1]); err != nil {
				break
			}
			operand = origametry.LineWithGradient(p, m)
		default:
			err = errOperandSyntax
		}

	default:
		err = errOperandSyntax
	}

	if err != nil {
		return nil, errors.WithMessagef(err, "%q", s)
	}
	return operand, nil
}

func parsePoint(s string) (origametry.Point, error) {
	xy, err := parseNumbers(s, 2)
	if err != nil {
		return origametry.Point{}, err
	}
	if math.IsInf(xy[0], 0) || math.IsInf(xy[1], 0) {
		return origametry.Point{}, errors.Wrapf(errOperandSyntax, "%q is not a finite point", s)
	}
	return origametry.Pt(xy[0], xy[1]), nil
}

func parseNumbers(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, errors.Wrapf(errOperandSyntax, "expected %d numbers in %q", n, s)
	}
	numbers := make([]float64, n)
	for i, field := range fields {
		var err error
		if numbers[i], err = parseNumber(field); err != nil {
			return nil, err
		}
	}
	return numbers, nil
}

func parseNumber(s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(x) {
		return 0, errors.Wrapf(errOperandSyntax, "%q is not a number", s)
	}
	return x, nil
}

func parseOperands(args []string) ([]origametry.Operand, error) {
	operands := make([]origametry.Operand, len(args))
	for i, arg := range args {
		var err error
		if operands[i], err = parseOperand(arg); err != nil {
			return nil, err
		}
	}
	return operands, nil
}
