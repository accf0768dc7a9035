package viz

import "github.com/guptarohit/asciigraph"

// PlotSeries renders a stored stat series as a terminal chart.
func PlotSeries(values []float64, caption string, width, height int) string {
	if len(values) == 0 {
		return "(no data)"
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
