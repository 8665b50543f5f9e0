package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrBadHex indicates a color string that is not a parseable hex code.
var ErrBadHex = errors.New("palette: invalid hex color")

// fallback is handed out when a palette has nothing to offer.
var fallback = color.Color(color.Gray{Y: 0x80})

// Palette is an ordered list of colors assigned to series by index.
type Palette []color.Color

// Tol is Paul Tol's qualitative palette, designed for colorblind
// accessibility (https://personal.sron.nl/~pault/). It is the default
// series palette.
var Tol = Palette{
	color.RGBA{R: 0x44, G: 0x77, B: 0xAA, A: 0xFF}, // blue
	color.RGBA{R: 0xEE, G: 0x66, B: 0x77, A: 0xFF}, // rose
	color.RGBA{R: 0x22, G: 0x88, B: 0x33, A: 0xFF}, // green
	color.RGBA{R: 0xCC, G: 0xBB, B: 0x44, A: 0xFF}, // olive
	color.RGBA{R: 0x66, G: 0xCC, B: 0xEE, A: 0xFF}, // cyan
	color.RGBA{R: 0xAA, G: 0x33, B: 0x77, A: 0xFF}, // purple
	color.RGBA{R: 0xBB, G: 0xBB, B: 0xBB, A: 0xFF}, // grey
	color.RGBA{R: 0xEE, G: 0x88, B: 0x66, A: 0xFF}, // orange
	color.RGBA{R: 0x44, G: 0xBB, B: 0x99, A: 0xFF}, // teal
	color.RGBA{R: 0xFF, G: 0xAA, B: 0xBB, A: 0xFF}, // pink
}

// Color returns the color for a given series index, cycling through the
// palette. An empty palette yields an opaque mid-gray.
func (p Palette) Color(i int) color.Color {
	if len(p) == 0 {
		return fallback
	}
	if i < 0 {
		i = -i
	}

	return p[i%len(p)]
}

// Take returns the first n colors of the cycled palette, one per series.
// Non-positive n yields nil.
func (p Palette) Take(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = p.Color(i)
	}

	return out
}

// Reversed returns a fresh palette with the color order flipped.
func (p Palette) Reversed() Palette {
	out := make(Palette, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}

	return out
}

// FromHex builds a palette from hex codes ("#4477AA" or "4477AA").
// The first unparseable code aborts with ErrBadHex naming the offender.
func FromHex(hexes ...string) (Palette, error) {
	out := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex("#" + strings.TrimPrefix(h, "#"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadHex, h)
		}
		out = append(out, c)
	}

	return out, nil
}

// Blend returns n colors interpolated from one color to another through
// the Lab color space, endpoints included. n ≤ 0 yields nil and n == 1
// yields just the starting color.
func Blend(from, to color.Color, n int) Palette {
	if n <= 0 {
		return nil
	}
	a, okA := colorful.MakeColor(from)
	b, okB := colorful.MakeColor(to)
	if !okA || !okB {
		// Fully transparent endpoints carry no chroma to blend.
		return nil
	}

	out := make(Palette, n)
	out[0] = a
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n-1)
		out[i] = a.BlendLab(b, t).Clamped()
	}

	return out
}
