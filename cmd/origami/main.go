package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/origametry"
	"github.com/osuushi/origametry/construction"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the fold solver. Operands are written as in
// parseOperand, and every command can draw what it did:
//
//	origami fold P:0,0 P:2,2
//	origami --draw out.png fold P:0,1 G:0 P:0,0 P:0,0
//	origami reflect P:1,0 G:1
//	origami run construction.yaml
//	origami add 2 3
var (
	app = kingpin.New("origami", "Solve origami folds.")

	verbose = app.Flag("verbose", "Log which axiom each fold uses.").Short('v').Bool()
	color   = app.Flag("color", "Color the output.").Default("true").Bool()
	dump    = app.Flag("dump", "Print results as Go values.").Bool()
	drawTo  = app.Flag("draw", "Draw the operands and creases to a PNG file.").PlaceHolder("FILE").String()
	imgcat  = app.Flag("imgcat", "Print the drawing in the terminal (iTerm only).").Bool()
	scale   = app.Flag("scale", "Pixels per unit in drawings.").Default("100").Float64()
	label   = app.Flag("label", "Make up names for unnamed operands in drawings.").Bool()

	foldCmd      = app.Command("fold", "Find every crease for a fold of two or four operands.")
	foldOperands = foldCmd.Arg("operands", "Operands to fold.").Required().Strings()

	reflectCmd     = app.Command("reflect", "Reflect a point or line across a crease.")
	reflectOperand = reflectCmd.Arg("operand", "Point or line to reflect.").Required().String()
	reflectCrease  = reflectCmd.Arg("crease", "Line to reflect across.").Required().String()

	distanceCmd = app.Command("distance", "Measure between two points, or a point and a line.")
	distanceA   = distanceCmd.Arg("a", "First operand.").Required().String()
	distanceB   = distanceCmd.Arg("b", "Second operand.").Required().String()

	runCmd  = app.Command("run", "Evaluate a construction file.")
	runFile = runCmd.Arg("file", "YAML construction.").Required().ExistingFile()

	addCmd = app.Command("add", "Add two positive numbers by folding.")
	addA   = addCmd.Arg("a", "First number.").Required().Float64()
	addB   = addCmd.Arg("b", "Second number.").Required().Float64()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetFlags(0)
	log.SetPrefix("origami: ")
	if *verbose {
		origametry.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	out := &printer{w: os.Stdout, au: aurora.NewAurora(*color), dump: *dump}

	var sketch *origametry.Sketch
	var err error
	switch command {
	case foldCmd.FullCommand():
		sketch, err = runFold(out, *foldOperands)
	case reflectCmd.FullCommand():
		sketch, err = runReflect(out, *reflectOperand, *reflectCrease)
	case distanceCmd.FullCommand():
		sketch, err = runDistance(out, *distanceA, *distanceB)
	case runCmd.FullCommand():
		sketch, err = runConstruction(out, *runFile)
	case addCmd.FullCommand():
		sketch, err = runAdd(out, *addA, *addB)
	}
	if err != nil {
		log.Fatal(out.au.Red(err))
	}

	if sketch == nil {
		return
	}
	sketch.Label = *label
	if *drawTo != "" {
		if err := sketch.SavePNG(*drawTo, *scale); err != nil {
			log.Fatalf("Could not draw to %s: %v", *drawTo, err)
		}
	}
	if *imgcat {
		if err := sketch.Imgcat(*scale); err != nil {
			log.Fatalf("Could not print drawing: %v", err)
		}
	}
}

type printer struct {
	w    io.Writer
	au   aurora.Aurora
	dump bool
}

func (p *printer) creases(creases origametry.Creases) {
	if p.dump {
		fmt.Fprintf(p.w, "%# v\n", pretty.Formatter(creases))
		return
	}
	if creases.None() {
		fmt.Fprintln(p.w, p.au.Yellow("no creases"))
		return
	}
	for i, crease := range creases {
		fmt.Fprintf(p.w, "crease %d: %v\n", i+1, p.au.Green(crease))
	}
}

func (p *printer) value(name string, value interface{}, crease bool) {
	if p.dump {
		fmt.Fprintf(p.w, "%s = %# v\n", name, pretty.Formatter(value))
		return
	}
	if crease {
		fmt.Fprintf(p.w, "%s: %v\n", p.au.Cyan(name), p.au.Green(value))
		return
	}
	fmt.Fprintf(p.w, "%s: %v\n", p.au.Cyan(name), value)
}

func runFold(out *printer, args []string) (*origametry.Sketch, error) {
	operands, err := parseOperands(args)
	if err != nil {
		return nil, err
	}
	creases, err := origametry.Fold(operands...)
	if err != nil {
		return nil, err
	}
	out.creases(creases)

	sketch := &origametry.Sketch{Creases: creases}
	sketch.Add(operands...)
	return sketch, nil
}

func runReflect(out *printer, operandArg, creaseArg string) (*origametry.Sketch, error) {
	operands, err := parseOperands([]string{operandArg, creaseArg})
	if err != nil {
		return nil, err
	}
	crease, ok := operands[1].(origametry.Line)
	if !ok {
		return nil, errors.Errorf("crease must be a line, got %v", operands[1])
	}

	var reflected origametry.Operand
	switch o := operands[0].(type) {
	case origametry.Point:
		reflected, err = origametry.Reflect(o, crease)
	case origametry.Line:
		reflected, err = origametry.Reflect(o, crease)
	}
	if err != nil {
		return nil, err
	}
	out.value("reflection", reflected, false)

	sketch := &origametry.Sketch{Creases: []origametry.Line{crease}}
	sketch.Add(operands[0], reflected)
	return sketch, nil
}

func runDistance(out *printer, a, b string) (*origametry.Sketch, error) {
	operands, err := parseOperands([]string{a, b})
	if err != nil {
		return nil, err
	}
	distance, err := origametry.Distance(operands[0], operands[1])
	if err != nil {
		return nil, err
	}
	out.value("distance", distance, false)

	sketch := &origametry.Sketch{}
	sketch.Add(operands...)
	return sketch, nil
}

func runConstruction(out *printer, path string) (*origametry.Sketch, error) {
	c, err := construction.Load(path)
	if err != nil {
		return nil, err
	}
	result, err := c.Eval()
	if err != nil {
		return nil, err
	}
	printResult(out, result)
	return result.Sketch(), nil
}

func printResult(out *printer, result *construction.Result) {
	for _, name := range result.Order {
		if value, ok := result.Values[name]; ok {
			out.value(name, value, result.Creases[name])
		} else {
			out.value(name, result.Measurements[name], false)
		}
	}
}

func runAdd(out *printer, a, b float64) (*origametry.Sketch, error) {
	result, err := construction.Addition(a, b)
	if err != nil {
		return nil, err
	}
	if out.dump {
		printResult(out, result)
	}
	d, e := result.Measurements["d"], result.Measurements["e"]
	out.value("sum", math.Max(d, e), false)
	// The difference comes for free
	out.value("difference", math.Min(d, e), false)
	return result.Sketch(), nil
}
