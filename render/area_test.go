package render_test

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/streamplot/palette"
	"github.com/katalvlaran/streamplot/render"
	"github.com/katalvlaran/streamplot/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_BottomToTop verifies the default draw order and the boundary
// pairing of the produced layers.
func TestNew_BottomToTop(t *testing.T) {
	x := []float64{0, 1, 2}
	y := [][]float64{{1, 2, 3}, {1, 2, 3}}

	layers, err := render.New(x, y, render.WithLabels("a", "b"))
	require.NoError(t, err)
	require.Len(t, layers, 2, "one region per series")

	assert.Equal(t, []float64{0, 0, 0}, layers[0].Lower, "bottom layer sits on the baseline")
	assert.Equal(t, []float64{1, 2, 3}, layers[0].Upper)
	assert.Equal(t, []float64{1, 2, 3}, layers[1].Lower)
	assert.Equal(t, []float64{2, 4, 6}, layers[1].Upper)

	assert.Equal(t, "a", layers[0].Label)
	assert.Equal(t, "b", layers[1].Label)
	assert.Equal(t, palette.Tol.Color(0), layers[0].Color)
	assert.Equal(t, palette.Tol.Color(1), layers[1].Color)
}

// TestNew_TopToBottom verifies that WithTopToBottom flips draw order
// only: every series keeps its own color and label, and the boundaries
// are unchanged.
func TestNew_TopToBottom(t *testing.T) {
	x := []float64{0, 1, 2}
	y := [][]float64{{1, 2, 3}, {1, 2, 3}}

	layers, err := render.New(x, y, render.WithLabels("a", "b"), render.WithTopToBottom())
	require.NoError(t, err)
	require.Len(t, layers, 2)

	// Top layer is drawn (and returned) first.
	assert.Equal(t, []float64{2, 4, 6}, layers[0].Upper)
	assert.Equal(t, "b", layers[0].Label, "top layer keeps the top series' label")
	assert.Equal(t, palette.Tol.Color(1), layers[0].Color, "top layer keeps the top series' color")

	assert.Equal(t, []float64{0, 0, 0}, layers[1].Lower)
	assert.Equal(t, "a", layers[1].Label)
	assert.Equal(t, palette.Tol.Color(0), layers[1].Color)
}

// TestNew_XLength verifies that a mismatched x sequence errors with
// ErrXLength before any layer is built.
func TestNew_XLength(t *testing.T) {
	_, err := render.New([]float64{0, 1}, [][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, render.ErrXLength)
}

// TestNew_LayoutErrorsPassThrough verifies that stack preconditions
// surface unchanged.
func TestNew_LayoutErrorsPassThrough(t *testing.T) {
	x := []float64{0, 1, 2}

	_, err := render.New(x, [][]float64{{1, 2, 3}, {1, 2}})
	assert.ErrorIs(t, err, stack.ErrRaggedSeries)

	_, err = render.New(x, [][]float64{{1, 2, 3}}, render.WithBaseline(stack.Baseline(9)))
	assert.ErrorIs(t, err, stack.ErrUnknownBaseline)

	_, err = render.New(nil, nil)
	assert.ErrorIs(t, err, stack.ErrNoSeries)
}

// TestNew_ColorCycling verifies modular color assignment when fewer
// colors than series are given.
func TestNew_ColorCycling(t *testing.T) {
	x := []float64{0, 1}
	y := [][]float64{{1, 1}, {2, 2}, {3, 3}}
	red := color.RGBA{R: 0xFF, A: 0xFF}
	blue := color.RGBA{B: 0xFF, A: 0xFF}

	layers, err := render.New(x, y, render.WithColors(red, blue))
	require.NoError(t, err)
	require.Len(t, layers, 3)
	assert.Equal(t, color.Color(red), layers[0].Color)
	assert.Equal(t, color.Color(blue), layers[1].Color)
	assert.Equal(t, color.Color(red), layers[2].Color, "colors cycle for extra series")

	// Missing labels leave trailing layers unlabeled.
	layers, err = render.New(x, y, render.WithLabels("only-first"))
	require.NoError(t, err)
	assert.Equal(t, "only-first", layers[0].Label)
	assert.Equal(t, "", layers[1].Label)
	assert.Equal(t, "", layers[2].Label)
}

// TestLayer_DataRange verifies axis autoscaling bounds, including a
// baseline below zero.
func TestLayer_DataRange(t *testing.T) {
	x := []float64{0, 1}
	y := [][]float64{{4, 0}, {0, 4}}

	layers, err := render.New(x, y, render.WithBaseline(stack.Symmetric))
	require.NoError(t, err)

	xmin, xmax, ymin, ymax := layers[0].DataRange()
	assert.Equal(t, 0.0, xmin)
	assert.Equal(t, 1.0, xmax)
	assert.Equal(t, -2.0, ymin, "sym baseline dips below zero")
	assert.Equal(t, 2.0, ymax)
}

// TestAddToPlot_Draws smoke-tests the full drawing pass against an
// in-memory canvas: fill, boundary stroke, and legend entries.
func TestAddToPlot_Draws(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := [][]float64{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 1, 1, 1},
	}

	layers, err := render.New(x, y,
		render.WithBaseline(stack.WeightedWiggle),
		render.WithLabels("a", "b", "c"),
		render.WithLineStyle(draw.LineStyle{Color: color.Black, Width: vg.Points(1)}),
	)
	require.NoError(t, err)

	p := plot.New()
	render.AddToPlot(p, layers)

	c := vgimg.New(10*vg.Centimeter, 6*vg.Centimeter)
	assert.NotPanics(t, func() { p.Draw(draw.New(c)) })
}
