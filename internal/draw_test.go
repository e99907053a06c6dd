package internal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBoundingBox(t *testing.T) {
	approx := cmpopts.EquateApprox(0, Tolerance)

	cases := []struct {
		name   string
		points []Point
		lines  []Line
		want   Box
	}{
		{"empty", nil, nil, Box{-1, -1, 1, 1}},
		{"single point", []Point{Pt(10, 13)}, nil, Box{9, 12, 11, 14}},
		{"single line", nil, []Line{NewLine(1, -1, 2)}, Box{-1, 1, 1, 3}},
		{"single sloped line", nil, []Line{NewLine(1, 2, 1)}, Box{-1, -1.5, 1, .5}},
		{"single vertical line", nil, []Line{NewLine(1, 0, 0)}, Box{-1, -1, 1, 1}},
		{"two points", []Point{Pt(1, 2), Pt(8, 3)}, nil, Box{-.75, -2.75, 9.75, 7.75}},
		{"point and line", []Point{Pt(1, 2)}, []Line{NewLine(0, 1, -1)}, Box{.25, .75, 1.75, 2.25}},
		{"two lines", nil, []Line{NewLine(1, 1, 0), NewLine(0, 1, -1)}, Box{-2, 0, 0, 2}},
		{"parallel lines", nil, []Line{NewLine(0, 1, -1), NewLine(0, 1, -3), NewLine(0, 1, -2)}, Box{-1.5, .5, 1.5, 3.5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			diff(t, c.want, FindBoundingBox(c.points, c.lines), approx)
		})
	}
}

func TestTrimToBox(t *testing.T) {
	t.Run("sloped", func(t *testing.T) {
		start, end, ok := TrimToBox(NewLine(1, -1, 2), Box{-1, 1, 1, 3})
		require.True(t, ok)
		diff(t, []Point{Pt(-1, 1), Pt(1, 3)}, []Point{start, end}, pointComparer)
	})

	t.Run("through corners", func(t *testing.T) {
		start, end, ok := TrimToBox(NewLine(1, 1, 0), Box{-2, 0, 0, 2})
		require.True(t, ok)
		diff(t, []Point{Pt(-2, 2), Pt(0, 0)}, []Point{start, end}, pointComparer)
	})

	t.Run("horizontal", func(t *testing.T) {
		start, end, ok := TrimToBox(NewLine(0, 1, -1), Box{.25, .75, 1.75, 2.25})
		require.True(t, ok)
		diff(t, []Point{Pt(.25, 1), Pt(1.75, 1)}, []Point{start, end}, pointComparer)
	})

	t.Run("vertical", func(t *testing.T) {
		start, end, ok := TrimToBox(NewLine(1, 0, 0), DefaultBox)
		require.True(t, ok)
		diff(t, []Point{Pt(0, -1), Pt(0, 1)}, []Point{start, end}, pointComparer)
	})

	t.Run("outside", func(t *testing.T) {
		_, _, ok := TrimToBox(NewLine(0, 1, -1), Box{-50, -50, 0, 0})
		assert.False(t, ok)
	})

	t.Run("endpoints are in the box", func(t *testing.T) {
		box := Box{-3, -3, 3, 3}
		for _, gradient := range []float64{-5, -1, -0.1, 0, 0.3, 1, 7, inf} {
			line := LineWithGradient(Pt(0.5, -0.25), gradient)
			start, end, ok := TrimToBox(line, box)
			require.True(t, ok, "gradient %g", gradient)
			assert.True(t, start.IsOn(line))
			assert.True(t, end.IsOn(line))
			assert.False(t, start.Equal(end))
		}
	})
}

func TestSketch(t *testing.T) {
	var s Sketch
	s.Add(Pt(0, 0), NewLine(1, 0, -1))
	assert.Len(t, s.Points, 1)
	assert.Len(t, s.Lines, 1)

	s = Sketch{Points: []Point{Pt(0, 0)}}
	c := s.Draw(50)
	img := c.Image()
	// A 2×2 box at 50 pixels per unit, plus padding
	assert.Equal(t, 140, img.Bounds().Dx())
	assert.Equal(t, 140, img.Bounds().Dy())

	// The point is drawn in the middle
	r, g, b, _ := img.At(70, 70).RGBA()
	assert.Greater(t, r>>8, uint32(0xc0))
	assert.Less(t, g>>8, uint32(0x20))
	assert.Greater(t, b>>8, uint32(0xc0))

	// The corner is background
	r, g, b, _ = img.At(1, 1).RGBA()
	assert.Zero(t, r+g+b)
}

func TestSketchSavePNG(t *testing.T) {
	line1, line2 := NewLine(0, 1, -1), NewLine(1, 1, 0)
	s := Sketch{
		Points:  []Point{Pt(1, 2)},
		Lines:   []Line{line1, line2},
		Creases: Fold(line1, line2),
		Names:   map[Operand]string{line1: "top"},
		Label:   true,
	}

	path := filepath.Join(t.TempDir(), "sketch.png")
	require.NoError(t, s.SavePNG(path, 40))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestSketchImgcat(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	s := Sketch{Points: []Point{Pt(0, 0)}}

	var buf bytes.Buffer
	require.NoError(t, s.ImgcatTo(&buf, 20))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\033]1337;File=;inline=1:")))
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\a\n")))

	assert.EqualError(t, s.ImgcatTo(brokenWriter{}, 20), "broken pipe")
}
