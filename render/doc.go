// Package render adapts stacked-area layouts to gonum/plot.
//
// New runs the stack baseline calculator and wraps each series in a
// Layer: one filled region between two successive stack boundaries.
// A Layer implements plot.Plotter, plot.DataRanger, and plot.Thumbnailer,
// so layers slot straight into a plot.Plot and its legend.
//
// ⚙️ Usage:
//
//	layers, err := render.New(x, y,
//	  render.WithBaseline(stack.WeightedWiggle),
//	  render.WithLabels("cpu", "gpu", "dram"),
//	)
//	if err != nil { ... }
//	p := plot.New()
//	render.AddToPlot(p, layers)
//	_ = p.Save(16*vg.Centimeter, 9*vg.Centimeter, "stream.png")
//
// The adapter never touches the math: WithTopToBottom flips paint order
// only, while series keep their own colors and labels, so the canonical
// layout is identical either way.
package render
