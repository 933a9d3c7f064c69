package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bouncesim/internal/bounce"
)

const (
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 15
)

// PlotTrajectory draws height against time. The samples are resampled by
// asciigraph to fit width columns.
func PlotTrajectory(samples []bounce.Sample, width, height int) string {
	if len(samples) == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultPlotWidth
	}
	if height <= 0 {
		height = DefaultPlotHeight
	}

	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = s.Height
	}

	end := samples[len(samples)-1].T
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("height (m) over %.3f s", end)),
	)
}
