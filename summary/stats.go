package summary

import (
	"github.com/montanaflynn/stats"
	"github.com/rotblauer/gpxstat/common"
	"github.com/rotblauer/gpxstat/geo/diff"
)

// SpeedStats describes the distribution of interval speeds, in km/h.
type SpeedStats struct {
	Intervals int     `json:"intervals"`
	MeanKMH   float64 `json:"mean_kmh"`
	MedianKMH float64 `json:"median_kmh"`
	P95KMH    float64 `json:"p95_kmh"`
}

// Speeds returns the speed distribution over the intervals that have a speed:
// those with a non-zero time gap, and only the active ones if skipInactive.
func Speeds(s *diff.Series, skipInactive bool) SpeedStats {
	var data stats.Float64Data
	for i := 1; i < s.Len(); i++ {
		if s.DifferentialTimestamps[i] == 0 {
			continue
		}
		if skipInactive && !s.Active[i] {
			continue
		}
		data = append(data, s.DifferentialSpeeds[i]*common.MetersPerSecondToKMH)
	}
	out := SpeedStats{Intervals: len(data)}
	if len(data) == 0 {
		return out
	}
	if mean, err := data.Mean(); err == nil {
		out.MeanKMH = common.DecimalToFixed(mean, 1)
	}
	if median, err := data.Median(); err == nil {
		out.MedianKMH = common.DecimalToFixed(median, 1)
	}
	if p95, err := data.Percentile(95); err == nil {
		out.P95KMH = common.DecimalToFixed(p95, 1)
	}
	return out
}

// Overall sums up a collection of track summaries.
type Overall struct {
	Tracks         int     `json:"tracks"`
	TotalDistanceM float64 `json:"total_distance_m"`
	DurationS      int64   `json:"duration_s"`
	TotalAscentM   float64 `json:"total_ascent_m"`
	TotalDescentM  float64 `json:"total_descent_m"`

	// MaxSpeedKMH is the highest of the tracks' maximum speeds.
	MaxSpeedKMH float64 `json:"max_speed_kmh"`

	// AvgSpeedKMH is the mean of the tracks' average speeds, unweighted.
	AvgSpeedKMH float64 `json:"avg_speed_kmh"`
}

// Combine returns the overall statistics of summaries.
// No summaries combine to the zero value.
func Combine(summaries []Summary) Overall {
	out := Overall{Tracks: len(summaries)}
	if len(summaries) == 0 {
		return out
	}
	avgs := make(stats.Float64Data, 0, len(summaries))
	for _, s := range summaries {
		out.TotalDistanceM += s.TotalDistanceM
		out.DurationS += s.DurationS
		out.TotalAscentM += s.TotalAscentM
		out.TotalDescentM += s.TotalDescentM
		if s.MaxSpeedKMH > out.MaxSpeedKMH {
			out.MaxSpeedKMH = s.MaxSpeedKMH
		}
		avgs = append(avgs, s.AvgSpeedKMH)
	}
	if mean, err := avgs.Mean(); err == nil {
		out.AvgSpeedKMH = mean
	}
	return out
}
