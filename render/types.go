// Package render defines options and sentinel errors for the render
// subpackage of github.com/katalvlaran/streamplot.
package render

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/streamplot/palette"
	"github.com/katalvlaran/streamplot/stack"
)

// Sentinel errors for render operations.
var (
	// ErrXLength indicates the x sequence and the series disagree on N.
	ErrXLength = errors.New("render: x length must match the series length")
)

// DefaultBaseline is the layout used when no WithBaseline option is given.
const DefaultBaseline = stack.Zero

// Option mutates render options. Public entry points accept ...Option
// and resolve them against the documented defaults, last-writer-wins.
type Option func(*options)

// options is the effective configuration after applying Option setters.
// It is unexported to prevent external mutation.
type options struct {
	baseline    stack.Baseline
	labels      []string
	colors      palette.Palette
	topToBottom bool
	lineStyle   draw.LineStyle // zero Width leaves boundaries unstroked
}

// WithBaseline selects the baseline mode passed to stack.Compute.
// Validation happens there, so an unknown mode surfaces as
// stack.ErrUnknownBaseline from New.
func WithBaseline(mode stack.Baseline) Option {
	return func(o *options) { o.baseline = mode }
}

// WithLabels assigns legend labels to series in stacking order (label i
// belongs to series i). Missing trailing labels leave layers unlabeled.
func WithLabels(labels ...string) Option {
	return func(o *options) { o.labels = labels }
}

// WithColors assigns fill colors to series in stacking order, cycling
// when fewer colors than series are given.
func WithColors(colors ...color.Color) Option {
	return func(o *options) { o.colors = colors }
}

// WithPalette assigns a whole palette as the series color source.
func WithPalette(p palette.Palette) Option {
	return func(o *options) { o.colors = p }
}

// WithTopToBottom paints layers top first. This flips draw order only:
// each series keeps its own color and label, and the computed layout is
// untouched.
func WithTopToBottom() Option {
	return func(o *options) { o.topToBottom = true }
}

// WithLineStyle strokes the upper boundary of every layer with the given
// style. The default zero-width style draws no boundary lines.
func WithLineStyle(ls draw.LineStyle) Option {
	return func(o *options) { o.lineStyle = ls }
}

// gatherOptions resolves option setters against the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		baseline: DefaultBaseline,
		colors:   palette.Tol,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
