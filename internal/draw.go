package internal

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/origametry/dbg"
	"golang.org/x/image/font/basicfont"
)

// Box is an axis aligned rectangle in fold coordinates.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// The box used when there is nothing to look at.
var DefaultBox = Box{-1, -1, 1, 1}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

func (b Box) Contains(p Point) bool {
	return b.MinX <= p.X && p.X <= b.MaxX && b.MinY <= p.Y && p.Y <= b.MaxY
}

// FindBoundingBox picks a square box that shows every point, where every pair
// of lines cross, and some part of every line.
func FindBoundingBox(points []Point, lines []Line) Box {
	if len(points) == 0 && len(lines) == 0 {
		return DefaultBox
	}

	// Points of interest
	interesting := append([]Point{}, points...)
	for i, line1 := range lines {
		for _, line2 := range lines[i+1:] {
			if p, ok := line1.Intersection(line2); ok {
				interesting = append(interesting, p)
			}
		}
	}
	// The projections make sure part of each line is in view
	for _, p := range points {
		for _, line := range lines {
			interesting = append(interesting, Projection(p, line))
		}
	}
	interesting = uniquePoints(interesting)

	// A single line, or only parallel lines. Pick somewhere on the first, and
	// bring the others into view next to it.
	if len(interesting) == 0 {
		anchor, _ := twoPointsOn(lines[0])
		interesting = append(interesting, anchor)
		for _, line := range lines[1:] {
			interesting = append(interesting, Projection(anchor, line))
		}
	}

	box := Box{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range interesting {
		box.MinX = math.Min(box.MinX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}

	margin := math.Max(box.Width(), box.Height()) / 4
	if margin == 0 {
		margin = 1
	}
	box.MinX -= margin
	box.MinY -= margin
	box.MaxX += margin
	box.MaxY += margin

	// Square it up around the center
	ratio := box.Height() / box.Width()
	switch {
	case ratio < 1:
		dy := (1 - ratio) * box.Width()
		box.MinY -= dy / 2
		box.MaxY += dy / 2
	case ratio > 1:
		dx := (1 - 1/ratio) * box.Height()
		box.MinX -= dx / 2
		box.MaxX += dx / 2
	}

	return box
}

// TrimToBox cuts the part of an infinite line inside the box. The last return
// value is false if the line misses the box (or only touches a corner).
func TrimToBox(line Line, box Box) (Point, Point, bool) {
	crossMinX, okMinX := line.Intersection(NewLine(1, 0, -box.MinX))
	crossMaxX, okMaxX := line.Intersection(NewLine(1, 0, -box.MaxX))
	crossMinY, okMinY := line.Intersection(NewLine(0, 1, -box.MinY))
	crossMaxY, okMaxY := line.Intersection(NewLine(0, 1, -box.MaxY))

	// At least two of these are on the edge of the box when the line crosses
	// it. The others are outside, missing, or duplicates at a corner.
	var within []Point
	for _, cross := range []struct {
		p  Point
		ok bool
	}{{crossMinX, okMinX}, {crossMaxX, okMaxX}} {
		if cross.ok && box.MinY <= cross.p.Y && cross.p.Y <= box.MaxY {
			within = append(within, cross.p)
		}
	}
	for _, cross := range []struct {
		p  Point
		ok bool
	}{{crossMinY, okMinY}, {crossMaxY, okMaxY}} {
		if cross.ok && box.MinX <= cross.p.X && cross.p.X <= box.MaxX {
			within = append(within, cross.p)
		}
	}
	within = uniquePoints(within)

	switch {
	case len(within) < 2:
		return Point{}, Point{}, false
	case len(within) == 2:
		return within[0], within[1], true
	}

	// Rounding at a corner of the box can leave three candidates. Opposite
	// edges are always a valid pair.
	if okMinX && okMaxX && containsPoint(within, crossMinX) && containsPoint(within, crossMaxX) {
		return crossMinX, crossMaxX, true
	}
	if okMinY && okMaxY && containsPoint(within, crossMinY) && containsPoint(within, crossMaxY) {
		return crossMinY, crossMaxY, true
	}
	return within[0], within[1], true
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Padding around the box, in pixels, so points on the edge aren't cut in half
const drawPadding = 20

const (
	operandColor = "#d0d"
	creaseColor  = "#abf"
	labelColor   = "#fff"
)

// Sketch is a picture of a fold: the operands that went in and the creases
// that came out.
type Sketch struct {
	Points  []Point
	Lines   []Line
	Creases []Line

	// Overrides the computed bounding box
	Box *Box

	// Names to print next to operands. With Label set, operands without a name
	// get a readable made up one.
	Names map[Operand]string
	Label bool
}

// Add sorts operands into points and lines.
func (s *Sketch) Add(operands ...Operand) {
	for _, o := range operands {
		switch o := o.(type) {
		case Point:
			s.Points = append(s.Points, o)
		case Line:
			s.Lines = append(s.Lines, o)
		}
	}
}

func (s *Sketch) Bounds() Box {
	if s.Box != nil {
		return *s.Box
	}
	all := append(append([]Line{}, s.Lines...), s.Creases...)
	return FindBoundingBox(s.Points, all)
}

func (s *Sketch) name(o Operand) string {
	if name, ok := s.Names[o]; ok {
		return name
	}
	if s.Label {
		return dbg.Name(o)
	}
	return ""
}

// Draw renders the sketch with the given number of pixels per unit.
func (s *Sketch) Draw(scale float64) *gg.Context {
	box := s.Bounds()

	width := int(scale*box.Width()) + drawPadding*2
	height := int(scale*box.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-box.MinX, -box.MinY)

	type label struct {
		text string
		x, y float64
	}
	var labels []label
	addLabel := func(o Operand, p Point) {
		if text := s.name(o); text != "" {
			x, y := c.TransformPoint(p.X, p.Y)
			labels = append(labels, label{text, x, y})
		}
	}

	c.SetLineWidth(2)
	c.SetHexColor(operandColor)
	for _, line := range s.Lines {
		if start, end, ok := TrimToBox(line, box); ok {
			c.DrawLine(start.X, start.Y, end.X, end.Y)
			c.Stroke()
			addLabel(line, Midpoint(start, end))
		}
	}

	c.SetHexColor(creaseColor)
	c.SetDash(8, 6)
	for _, crease := range s.Creases {
		if start, end, ok := TrimToBox(crease, box); ok {
			c.DrawLine(start.X, start.Y, end.X, end.Y)
			c.Stroke()
			addLabel(crease, Midpoint(start, end))
		}
	}
	c.SetDash()

	for _, p := range s.Points {
		c.DrawPoint(p.X, p.Y, 5)
		c.SetHexColor(operandColor)
		c.FillPreserve()
		c.SetRGB(0, 0, 0)
		c.SetLineWidth(1)
		c.Stroke()
		addLabel(p, p)
	}

	// Text goes on in device space, or it would come out upside down
	c.Identity()
	c.SetFontFace(basicfont.Face7x13)
	c.SetHexColor(labelColor)
	for _, l := range labels {
		c.DrawStringAnchored(l.text, l.x+6, l.y-6, 0, 0)
	}

	return c
}

func (s *Sketch) Image(scale float64) image.Image {
	return s.Draw(scale).Image()
}

func (s *Sketch) SavePNG(path string, scale float64) error {
	return s.Draw(scale).SavePNG(path)
}

// Imgcat prints the sketch in the terminal (iTerm only).
func (s *Sketch) Imgcat(scale float64) error {
	return s.ImgcatTo(os.Stdout, scale)
}

// ImgcatTo writes the iTerm inline image sequence for the sketch to w.
func (s *Sketch) ImgcatTo(w io.Writer, scale float64) error {
	return imgcat.CatImage(s.Image(scale), w)
}
