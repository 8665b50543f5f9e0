package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/streamplot/palette"
	"github.com/katalvlaran/streamplot/stack"
)

// Layer is one filled region of a stacked area chart: the polygon
// between two successive stack boundaries over the shared x domain.
// Layers are produced by New and added to a plot via AddToPlot.
type Layer struct {
	// X holds the shared x coordinates, one per sample.
	X []float64

	// Lower and Upper are the bounding curves; Lower of the bottom layer
	// is the baseline itself.
	Lower, Upper []float64

	// Color fills the region.
	Color color.Color

	// Label names the series in the legend; empty means unlabeled.
	Label string

	// LineStyle strokes the upper boundary when its Width is positive.
	LineStyle draw.LineStyle
}

var (
	_ plot.Plotter     = (*Layer)(nil)
	_ plot.DataRanger  = (*Layer)(nil)
	_ plot.Thumbnailer = (*Layer)(nil)
)

// New computes the stacked layout for M series over x and returns one
// Layer per series in draw order (bottom-to-top, or top-to-bottom under
// WithTopToBottom). Color and label pairing follows series order in both
// cases.
//
// Errors:
//   - ErrXLength — len(x) differs from the series length.
//   - stack.Err* — the layout preconditions of stack.Compute.
//
// Errors abort before any layer is built; there are no partial results.
func New(x []float64, y [][]float64, opts ...Option) ([]*Layer, error) {
	o := gatherOptions(opts...)

	stacked, firstLine, err := stack.Compute(y, o.baseline)
	if err != nil {
		return nil, err
	}
	if len(x) != len(firstLine) {
		return nil, fmt.Errorf("%w: len(x)=%d, samples=%d", ErrXLength, len(x), len(firstLine))
	}

	m := len(stacked)
	bounds := stack.Boundaries(stacked, firstLine)

	// One color per series up front, then finite pulls; reversing both
	// the draw order and the cycles keeps pairing with series stable.
	colors := palette.NewCycle(o.colors.Take(m))
	labels := palette.NewLabels(o.labels)
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	if o.topToBottom {
		for l, r := 0, m-1; l < r; l, r = l+1, r-1 {
			order[l], order[r] = order[r], order[l]
		}
		colors.Reverse()
		labels.Reverse()
	}

	xs := append([]float64(nil), x...)
	layers := make([]*Layer, 0, m)
	for _, i := range order {
		layers = append(layers, &Layer{
			X:         xs,
			Lower:     bounds[i],
			Upper:     bounds[i+1],
			Color:     colors.Next(color.Transparent), // cycle holds exactly m colors
			Label:     labels.Next(),
			LineStyle: o.lineStyle,
		})
	}

	return layers, nil
}

// AddToPlot registers layers on a plot in slice order and adds a legend
// entry for every labeled layer.
func AddToPlot(p *plot.Plot, layers []*Layer) {
	for _, l := range layers {
		p.Add(l)
		if l.Label != "" {
			p.Legend.Add(l.Label, l)
		}
	}
}

// Plot implements the plot.Plotter interface: it fills the polygon
// traced by the upper boundary forward and the lower boundary backward,
// then optionally strokes the upper boundary.
func (l *Layer) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	n := len(l.X)
	pts := make([]vg.Point, 0, 2*n)
	for j := 0; j < n; j++ {
		pts = append(pts, vg.Point{X: trX(l.X[j]), Y: trY(l.Upper[j])})
	}
	for j := n - 1; j >= 0; j-- {
		pts = append(pts, vg.Point{X: trX(l.X[j]), Y: trY(l.Lower[j])})
	}
	c.FillPolygon(l.Color, c.ClipPolygonXY(pts))

	if l.LineStyle.Width > 0 {
		top := make([]vg.Point, n)
		for j := 0; j < n; j++ {
			top[j] = vg.Point{X: trX(l.X[j]), Y: trY(l.Upper[j])}
		}
		c.StrokeLines(l.LineStyle, c.ClipLinesXY(top)...)
	}
}

// DataRange implements the plot.DataRanger interface.
func (l *Layer) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for j := range l.X {
		xmin = math.Min(xmin, l.X[j])
		xmax = math.Max(xmax, l.X[j])
		// Negative samples can flip the curves locally.
		ymin = math.Min(ymin, math.Min(l.Lower[j], l.Upper[j]))
		ymax = math.Max(ymax, math.Max(l.Lower[j], l.Upper[j]))
	}

	return xmin, xmax, ymin, ymax
}

// Thumbnail fulfills the plot.Thumbnailer interface for legend entries.
func (l *Layer) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(l.Color, c.ClipPolygonY(pts))
}
