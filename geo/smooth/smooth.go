// Package smooth filters noisy elevation profiles.
package smooth

import (
	"github.com/montanaflynn/stats"
)

// MedianElevations returns elevs filtered with a centered median window.
// The window is clipped at both ends of the series, so the first and last
// values are medians of fewer samples. A window below 2 returns a copy.
// elevs is not modified.
func MedianElevations(elevs []float64, window int) []float64 {
	out := make([]float64, len(elevs))
	if window < 2 {
		copy(out, elevs)
		return out
	}
	before := (window - 1) / 2
	after := window / 2
	for i := range elevs {
		lo, hi := max(0, i-before), min(len(elevs), i+after+1)
		// stats.Median sorts a copy of its input.
		m, err := stats.Median(stats.Float64Data(elevs[lo:hi]))
		if err != nil {
			m = elevs[i]
		}
		out[i] = m
	}
	return out
}
