// Package stack computes stacked-area layouts for 1-D numeric series,
// with four baseline algorithms and no drawing dependencies.
//
// 🚀 What is a stack layout?
//
//	Given M series of length N, Compute returns the (M,N) matrix of
//	cumulative upper boundaries plus the length-N baseline curve the
//	lowest layer sits on.  The baseline mode decides where that curve
//	goes:
//	  • Zero            — constant zero (classic stacked plot)
//	  • Symmetric       — centered about zero (“ThemeRiver”)
//	  • Wiggle          — minimizes the sum of squared boundary slopes
//	  • WeightedWiggle  — wiggle, weighted by layer size (“Streamgraph”)
//
// ✨ Key properties:
//   - pure & total: inputs are never mutated, outputs are freshly
//     allocated, identical inputs yield bit-identical outputs
//   - shift-only: every baseline preserves the vertical extent
//     stack[M-1]−firstLine == column totals
//   - closed-form: Wiggle and WeightedWiggle evaluate one linear formula
//     each; no iterative optimization
//   - guarded: all-zero columns cannot produce NaN/Inf in WeightedWiggle
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/streamplot/stack"
//
//	y := [][]float64{{1, 2, 3}, {1, 2, 3}}
//	s, first, err := stack.Compute(y, stack.Zero)
//	// s     = [[1 2 3] [2 4 6]]
//	// first = [0 0 0]
//
// Performance:
//
//   - Time:   O(M·N) for every mode
//   - Memory: O(M·N) for the result
//
// See examples in example_test.go and the drawing adapter in the render
// subpackage.
package stack
