package viz

import "github.com/guptarohit/asciigraph"

// InversionPlot charts remaining inversions per step.
func InversionPlot(history []float64, width, height int) string {
	if len(history) == 0 {
		return ""
	}
	data := history
	if len(data) == 1 {
		// asciigraph needs two points to draw a line.
		data = []float64{data[0], data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("inversions remaining"),
	)
}
