// Package palette provides ordered color palettes and finite
// color/label cycles for stacked-area rendering.
//
// A Palette indexes modularly, so any series count gets a color. A Cycle
// pulls values one at a time with a caller-supplied default once the
// sequence runs dry, which keeps color and label pairing free of shared
// global state (each drawing pass owns its own cycles).
//
// Blending goes through the Lab color space (lucasb-eyer/go-colorful)
// so interpolated ramps stay perceptually even.
package palette
