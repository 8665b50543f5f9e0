package stack

import "fmt"

// Compute — Stack Baseline Calculator
//
// Description:
//
//	Compute turns M unstacked series of length N into the stacked-area
//	layout: the (M,N) matrix of upper layer boundaries plus the length-N
//	baseline curve the lowest layer sits on.  Row order is significant:
//	row 0 ends up nearest the baseline.
//
// Algorithm Outline (let total[j] = Σ_i y[i][j]):
//  1. Validate: M ≥ 1, all rows share length N ≥ 1, mode is recognized.
//  2. stack[i][j] = Σ_{k ≤ i} y[k][j] (row-wise cumulative sum).
//  3. Baseline per mode:
//     Zero            — firstLine[j] = 0.
//     Symmetric       — firstLine[j] = −total[j]/2.
//     Wiggle          — firstLine[j] = −(1/M)·Σ_i y[i][j]·(M−0.5−i),
//     the closed-form minimizer of the summed squared
//     boundary slopes.
//     WeightedWiggle  — as Wiggle but each layer's slope contribution is
//     weighted by its relative size at each x; see
//     weightedWiggle below for the exact procedure.
//  4. Add firstLine to every row of stack (all modes except Zero).
//
// Invariants:
//   - stack[M-1][j] == firstLine[j] + total[j] for every j: a baseline
//     shifts the stack, it never rescales it.
//   - For non-negative input, boundaries are non-decreasing in i.
//   - Inputs are read-only; both outputs are freshly allocated.
//
// Complexity:
//
//	Time   = O(M·N)
//	Memory = O(M·N)
//
// Errors:
//   - ErrNoSeries        — y has no rows.
//   - ErrEmptySeries     — the first row has zero samples.
//   - ErrRaggedSeries    — rows differ in length.
//   - ErrUnknownBaseline — mode is not one of the four recognized values.
func Compute(y [][]float64, mode Baseline) (stacked [][]float64, firstLine []float64, err error) {
	if err = validate(y); err != nil {
		return nil, nil, err
	}
	if !mode.valid() {
		return nil, nil, fmt.Errorf("%w (got %q)", ErrUnknownBaseline, mode.String())
	}

	m, n := len(y), len(y[0])

	// Row-wise cumulative sum into fresh storage.
	stacked = make([][]float64, m)
	for i := 0; i < m; i++ {
		stacked[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			stacked[i][j] = y[i][j]
			if i > 0 {
				stacked[i][j] += stacked[i-1][j]
			}
		}
	}

	switch mode {
	case Zero:
		// Constant zero baseline; the cumulative sum already is the layout.
		firstLine = make([]float64, n)

	case Symmetric:
		firstLine = columnTotals(y)
		for j := 0; j < n; j++ {
			firstLine[j] *= -0.5
		}
		shift(stacked, firstLine)

	case Wiggle:
		firstLine = make([]float64, n)
		for i := 0; i < m; i++ {
			// Center-of-mass weight of layer i in the slope objective.
			w := float64(m) - 0.5 - float64(i)
			for j := 0; j < n; j++ {
				firstLine[j] += y[i][j] * w
			}
		}
		for j := 0; j < n; j++ {
			firstLine[j] /= -float64(m)
		}
		shift(stacked, firstLine)

	case WeightedWiggle:
		firstLine = weightedWiggle(y, stacked)
		shift(stacked, firstLine)
	}

	return stacked, firstLine, nil
}

// weightedWiggle evaluates the size-weighted wiggle baseline against the
// still-unshifted cumulative stack.
//
// Procedure (per layer i, column j):
//  1. invTotal[j] = 1/total[j] if total[j] > 0, else 0 — the zero guard
//     keeps all-zero columns finite instead of dividing by zero.
//  2. increase = first difference of y[i] along x (y[i][0] at j=0).
//  3. belowSize = total[j] − stack[i][j] + 0.5·y[i][j], i.e. everything
//     under layer i plus half of the layer itself.
//  4. moveUp = belowSize·invTotal[j], forced to 0.5 at j=0.
//  5. center[j] = Σ_i (moveUp − 0.5)·increase, then running-summed over
//     columns.
//  6. firstLine[j] = centerCumsum[j] − 0.5·total[j].
func weightedWiggle(y, stacked [][]float64) []float64 {
	m, n := len(y), len(y[0])

	total := columnTotals(y)
	invTotal := make([]float64, n)
	for j, t := range total {
		if t > 0 {
			invTotal[j] = 1 / t
		}
	}

	center := make([]float64, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			increase := y[i][j]
			if j > 0 {
				increase -= y[i][j-1]
			}
			moveUp := 0.5 // forced for the first column of every layer
			if j > 0 {
				belowSize := total[j] - stacked[i][j] + 0.5*y[i][j]
				moveUp = belowSize * invTotal[j]
			}
			center[j] += (moveUp - 0.5) * increase
		}
	}

	firstLine := make([]float64, n)
	var run float64
	for j := 0; j < n; j++ {
		run += center[j]
		firstLine[j] = run - 0.5*total[j]
	}

	return firstLine
}

// Rows assembles individual series into the M×N matrix expected by
// Compute, copying every series. It applies the same validation as
// Compute, so callers can fail fast before any layout work.
func Rows(series ...[]float64) ([][]float64, error) {
	y := make([][]float64, len(series))
	for i, s := range series {
		y[i] = append([]float64(nil), s...)
	}
	if err := validate(y); err != nil {
		return nil, err
	}

	return y, nil
}

// Totals returns the column sums of a rectangular series matrix.
// An empty matrix yields nil.
func Totals(y [][]float64) []float64 {
	if len(y) == 0 || len(y[0]) == 0 {
		return nil
	}

	return columnTotals(y)
}

// Boundaries lists the M+1 boundary curves of a computed layout in
// canonical bottom-to-top order: firstLine, then each stacked row.
// Every curve is a fresh copy; mutating the result leaves the layout
// untouched.
func Boundaries(stacked [][]float64, firstLine []float64) [][]float64 {
	bounds := make([][]float64, 0, len(stacked)+1)
	bounds = append(bounds, append([]float64(nil), firstLine...))
	for _, row := range stacked {
		bounds = append(bounds, append([]float64(nil), row...))
	}

	return bounds
}

// validate checks the rectangular-series preconditions shared by Compute
// and Rows.
func validate(y [][]float64) error {
	if len(y) == 0 {
		return ErrNoSeries
	}
	n := len(y[0])
	if n == 0 {
		return ErrEmptySeries
	}
	for i := 1; i < len(y); i++ {
		if len(y[i]) != n {
			return fmt.Errorf("%w: series 0 has %d samples, series %d has %d",
				ErrRaggedSeries, n, i, len(y[i]))
		}
	}

	return nil
}

// columnTotals sums a rectangular matrix over its rows.
// Callers must have validated rectangularity.
func columnTotals(y [][]float64) []float64 {
	total := make([]float64, len(y[0]))
	for _, row := range y {
		for j, v := range row {
			total[j] += v
		}
	}

	return total
}

// shift adds the baseline curve to every row of the stack in place.
func shift(stacked [][]float64, firstLine []float64) {
	for _, row := range stacked {
		for j := range row {
			row[j] += firstLine[j]
		}
	}
}
