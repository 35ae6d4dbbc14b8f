package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/CompProgTools/Algoview/internal/metrics"
	"github.com/CompProgTools/Algoview/internal/search"
)

// WindowSeries returns the number of elements still in play at each step.
func WindowSeries(tr search.Trace) []float64 {
	size := len(tr.Sequence())
	data := make([]float64, tr.Len())
	for i := range data {
		data[i] = float64(metrics.WindowWidth(tr.At(i), size))
	}
	return data
}

// WindowChart plots WindowSeries. An empty trace yields "".
func WindowChart(tr search.Trace, width, height int) string {
	data := WindowSeries(tr)
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(tr.Kind().String()+" search window per step"),
	)
}
