package stack_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/streamplot/stack"
)

// benchmarkCompute is a helper that runs Compute on m synthetic series of
// n samples each. It resets the timer before entering the loop and fails
// on unexpected errors.
func benchmarkCompute(b *testing.B, m, n int, mode stack.Baseline) {
	// Prepare m smooth, strictly positive series of length n.
	y := make([][]float64, m)
	for i := 0; i < m; i++ {
		y[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			y[i][j] = 2 + math.Sin(float64(j)/10+float64(i)) // predictable waveform
		}
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err := stack.Compute(y, mode); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkCompute_Zero benchmarks the plain stacked layout on 10×1000 series.
func BenchmarkCompute_Zero(b *testing.B) {
	benchmarkCompute(b, 10, 1000, stack.Zero)
}

// BenchmarkCompute_Symmetric benchmarks the ThemeRiver layout on 10×1000 series.
func BenchmarkCompute_Symmetric(b *testing.B) {
	benchmarkCompute(b, 10, 1000, stack.Symmetric)
}

// BenchmarkCompute_Wiggle benchmarks the wiggle layout on 10×1000 series.
func BenchmarkCompute_Wiggle(b *testing.B) {
	benchmarkCompute(b, 10, 1000, stack.Wiggle)
}

// BenchmarkCompute_WeightedWiggle benchmarks the streamgraph layout on 10×1000 series.
func BenchmarkCompute_WeightedWiggle(b *testing.B) {
	benchmarkCompute(b, 10, 1000, stack.WeightedWiggle)
}

// BenchmarkCompute_WideWeightedWiggle benchmarks the streamgraph layout on 50×10000 series.
func BenchmarkCompute_WideWeightedWiggle(b *testing.B) {
	benchmarkCompute(b, 50, 10000, stack.WeightedWiggle)
}
