/*
Package act classifies the intervals between consecutive waypoints
as active (moving) or inactive (paused, or standing still).
*/

package act

import (
	"time"

	"github.com/rotblauer/gpxstat/params"
)

// IsPause reports whether a time gap between two waypoints is long enough
// to be a pause in recording.
func IsPause(dt time.Duration, config *params.ActConfig) bool {
	return dt >= config.PauseInterval
}

// IsStationary reports whether a displacement (meters) is small enough
// to be GPS noise around a standing position.
func IsStationary(dist float64, config *params.ActConfig) bool {
	return dist <= config.StationaryDistance
}

// Classify reports whether the interval is active.
// Either a pause or a stationary displacement alone makes it inactive.
// Negative gaps (out of order waypoints) are never pauses.
func Classify(dt time.Duration, dist float64, config *params.ActConfig) bool {
	if config == nil {
		config = params.DefaultActConfig
	}
	return !IsPause(dt, config) && !IsStationary(dist, config)
}

// Ratio returns the share of active entries, from 0 to 1.
// The leading entry of a series has no interval and is not counted.
func Ratio(active []bool) float64 {
	if len(active) < 2 {
		return 0
	}
	n := 0
	for _, a := range active[1:] {
		if a {
			n++
		}
	}
	return float64(n) / float64(len(active)-1)
}
