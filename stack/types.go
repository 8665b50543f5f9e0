// Package stack defines baseline modes and sentinel errors
// for the stack subpackage of github.com/katalvlaran/streamplot.
package stack

import (
	"errors"
	"fmt"
)

// Sentinel errors for stack layout operations.
var (
	// ErrNoSeries indicates the input holds no series at all.
	ErrNoSeries = errors.New("stack: at least one series is required")
	// ErrEmptySeries indicates a series with zero samples.
	ErrEmptySeries = errors.New("stack: series must contain at least one sample")
	// ErrRaggedSeries indicates series of differing lengths.
	ErrRaggedSeries = errors.New("stack: all series must have the same length")
	// ErrUnknownBaseline indicates an unrecognized baseline mode.
	ErrUnknownBaseline = errors.New(`stack: baseline must be one of "zero", "sym", "wiggle", "weighted_wiggle"`)
)

// Baseline selects the algorithm used to place the offset curve the
// lowest layer is drawn against. The baseline shifts the whole stack
// vertically; it never changes layer thicknesses.
type Baseline int

const (
	// Zero keeps a constant zero baseline: a simple stacked plot.
	Zero Baseline = iota
	// Symmetric centers the stack about zero (“ThemeRiver” style).
	Symmetric
	// Wiggle minimizes the sum of squared slopes of the stacked
	// boundaries across x, via a closed-form correction.
	Wiggle
	// WeightedWiggle is Wiggle with each layer's contribution weighted
	// by its relative size at each x (“Streamgraph” layout).
	WeightedWiggle
)

// baselineNames maps modes to their canonical wire names.
var baselineNames = map[Baseline]string{
	Zero:           "zero",
	Symmetric:      "sym",
	Wiggle:         "wiggle",
	WeightedWiggle: "weighted_wiggle",
}

// String returns the canonical name of the baseline mode
// ("zero", "sym", "wiggle", "weighted_wiggle").
func (b Baseline) String() string {
	if name, ok := baselineNames[b]; ok {
		return name
	}

	return fmt.Sprintf("baseline(%d)", int(b))
}

// valid reports whether b is one of the four recognized modes.
func (b Baseline) valid() bool {
	_, ok := baselineNames[b]

	return ok
}

// ParseBaseline maps a canonical name back to its Baseline mode.
// Unrecognized names yield ErrUnknownBaseline.
func ParseBaseline(name string) (Baseline, error) {
	for b, n := range baselineNames {
		if n == name {
			return b, nil
		}
	}

	return 0, fmt.Errorf("%w (got %q)", ErrUnknownBaseline, name)
}
