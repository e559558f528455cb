// Package summary reduces a differential series to trip statistics.
// Nothing here mutates the series, and degenerate series (empty, one waypoint,
// zero duration) aggregate to zero values instead of failing.
package summary

import (
	"github.com/montanaflynn/stats"
	"github.com/rotblauer/gpxstat/common"
	"github.com/rotblauer/gpxstat/geo/diff"
)

// Summary is the record handed to whoever persists or displays a track.
type Summary struct {
	TotalDistanceM float64 `json:"total_distance_m"`

	// DurationS excludes inactive intervals when they are skipped.
	DurationS int64 `json:"duration_s"`

	TotalDurationS int64   `json:"total_duration_s"`
	TotalAscentM   float64 `json:"total_ascent_m"`
	TotalDescentM  float64 `json:"total_descent_m"`
	AvgSpeedKMH    float64 `json:"avg_speed_kmh"`
	MaxSpeedKMH    float64 `json:"max_speed_kmh"`

	// StartDate is the first waypoint's time as written in the document.
	StartDate string `json:"start_date"`
}

// Aggregate computes the summary of s.
// With skipInactive, distance, duration and average speed only count active intervals.
func Aggregate(s *diff.Series, skipInactive bool) Summary {
	if s.Len() == 0 {
		return Summary{}
	}
	return Summary{
		TotalDistanceM: TotalDistance(s, skipInactive),
		DurationS:      Duration(s, skipInactive),
		TotalDurationS: Duration(s, false),
		TotalAscentM:   TotalAscent(s),
		TotalDescentM:  TotalDescent(s),
		AvgSpeedKMH:    AvgSpeed(s, skipInactive),
		MaxSpeedKMH:    MaxSpeed(s),
		StartDate:      s.StartDate,
	}
}

// TotalDistance sums the differential distances, in meters.
func TotalDistance(s *diff.Series, skipInactive bool) float64 {
	sum := 0.0
	for i := 0; i < s.Len(); i++ {
		if skipInactive && !s.Active[i] {
			continue
		}
		sum += s.DifferentialDistances[i]
	}
	return sum
}

// Duration is the time from the first to the last waypoint, in seconds,
// less the time spent in inactive intervals if skipInactive.
func Duration(s *diff.Series, skipInactive bool) int64 {
	n := s.Len()
	if n == 0 {
		return 0
	}
	d := s.RelativeTimestamps[n-1]
	if !skipInactive {
		return d
	}
	for i := 0; i < n; i++ {
		if !s.Active[i] {
			d -= s.DifferentialTimestamps[i]
		}
	}
	return d
}

// TotalAscent sums all elevation gains, active or not.
func TotalAscent(s *diff.Series) float64 {
	if s.Len() == 0 {
		return 0
	}
	sum, _ := stats.Sum(s.DifferentialAscents)
	return sum
}

// TotalDescent sums all elevation losses, active or not.
func TotalDescent(s *diff.Series) float64 {
	if s.Len() == 0 {
		return 0
	}
	sum, _ := stats.Sum(s.DifferentialDescents)
	return sum
}

// AvgSpeed returns distance over duration in km/h.
// A track without positive duration has an average speed of 0.
func AvgSpeed(s *diff.Series, skipInactive bool) float64 {
	duration := Duration(s, skipInactive)
	if duration <= 0 {
		return 0
	}
	return common.MetersPerSecondToKMH * TotalDistance(s, skipInactive) / float64(duration)
}

// MaxSpeed returns the highest interval speed in km/h, rounded to one decimal.
func MaxSpeed(s *diff.Series) float64 {
	if s.Len() == 0 {
		return 0
	}
	top, err := stats.Max(s.DifferentialSpeeds)
	if err != nil {
		return 0
	}
	return common.DecimalToFixed(top*common.MetersPerSecondToKMH, 1)
}

// DistanceInTime sums the differential distances of the entries whose relative
// timestamp lies within [start, end] seconds. Entries are visited in order and
// the sum stops at the first one past end.
func DistanceInTime(s *diff.Series, start, end int64) float64 {
	sum := 0.0
	for i := 0; i < s.Len(); i++ {
		rel := s.RelativeTimestamps[i]
		if rel > end {
			break
		}
		if rel >= start {
			sum += s.DifferentialDistances[i]
		}
	}
	return sum
}
