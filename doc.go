// Package streamplot turns a set of 1-D numeric series sharing a common
// x-axis into a stacked area chart layout — from plain stacked plots to
// ThemeRiver and Streamgraph baselines.
//
// 🚀 What is streamplot?
//
//	A small, pure library that brings together:
//		• Stack layout: row-wise cumulative sums with four baseline modes
//		  (zero, sym, wiggle, weighted_wiggle)
//		• Palettes: finite color cycles with perceptual (Lab) blending
//		• Rendering: gonum/plot layers that fill the regions between
//		  successive stack boundaries
//
// ✨ Why choose streamplot?
//
//   - Deterministic – pure functions, fresh outputs, no hidden state
//   - Exact layouts – closed-form wiggle/weighted_wiggle baselines, no
//     iterative optimization
//   - Composable – the calculator never draws; the drawing adapter never
//     computes
//
// Everything is organized under three subpackages:
//
//	stack/   — the Stack Baseline Calculator (the mathematical core)
//	palette/ — color palettes and finite label/color cycles
//	render/  — gonum/plot adapter producing one filled Layer per series
//
// Quick ASCII example:
//
//	    ┌────────────╮
//	    │  series 2  ╰──
//	    ├────────────╮
//	    │  series 1  ╰──
//	    ├────────────╮
//	    │  series 0  ╰──
//	────┴───────────────  ← baseline (zero / sym / wiggle / weighted_wiggle)
//
// Dive into examples/ for runnable walkthroughs of every baseline mode
// and a PNG streamgraph demo.
//
//	go get github.com/katalvlaran/streamplot/stack
package streamplot
