package palette

import "image/color"

// Cycle pulls colors one at a time from a finite sequence. Once the
// sequence is exhausted, Next keeps returning the caller-supplied
// default. Each drawing pass owns its own Cycle, so there is no shared
// cycling state between plots.
type Cycle struct {
	colors []color.Color
	pos    int
}

// NewCycle wraps a color sequence in a fresh cycle. The slice is copied;
// later mutation of the argument does not affect the cycle.
func NewCycle(colors []color.Color) *Cycle {
	return &Cycle{colors: append([]color.Color(nil), colors...)}
}

// Next returns the next color, or def once the sequence ran dry.
func (c *Cycle) Next(def color.Color) color.Color {
	if c.pos >= len(c.colors) {
		return def
	}
	out := c.colors[c.pos]
	c.pos++

	return out
}

// Reverse flips the order of the colors not yet pulled and returns the
// cycle for chaining.
func (c *Cycle) Reverse() *Cycle {
	rest := c.colors[c.pos:]
	for l, r := 0, len(rest)-1; l < r; l, r = l+1, r-1 {
		rest[l], rest[r] = rest[r], rest[l]
	}

	return c
}

// Remaining reports how many colors are left before Next falls back to
// its default.
func (c *Cycle) Remaining() int {
	return len(c.colors) - c.pos
}

// Labels pulls strings one at a time from a finite sequence, returning
// the empty string once exhausted. It mirrors Cycle so color and label
// pairing advance in lockstep.
type Labels struct {
	labels []string
	pos    int
}

// NewLabels wraps a label sequence in a fresh iterator, copying it.
func NewLabels(labels []string) *Labels {
	return &Labels{labels: append([]string(nil), labels...)}
}

// Next returns the next label, or "" once the sequence ran dry.
func (l *Labels) Next() string {
	if l.pos >= len(l.labels) {
		return ""
	}
	out := l.labels[l.pos]
	l.pos++

	return out
}

// Reverse flips the order of the labels not yet pulled and returns the
// iterator for chaining.
func (l *Labels) Reverse() *Labels {
	rest := l.labels[l.pos:]
	for a, b := 0, len(rest)-1; a < b; a, b = a+1, b-1 {
		rest[a], rest[b] = rest[b], rest[a]
	}

	return l
}
