// Package diff derives the per-interval differential series of a track:
// distance, ascent, descent, time and speed between consecutive waypoints.
package diff

import (
	"fmt"
	"math"
	"time"

	"github.com/rotblauer/gpxstat/common"
	"github.com/rotblauer/gpxstat/geo/act"
	"github.com/rotblauer/gpxstat/params"
	"github.com/rotblauer/gpxstat/types/quality"
	"github.com/rotblauer/gpxstat/types/waypoint"
)

// Series holds one entry per retained waypoint in every slice.
// Entry i of a differential slice describes the interval ending at waypoint i;
// entry 0 has no interval and is zero (Active[0] is true).
type Series struct {
	AbsoluteTimestamps []time.Time
	RelativeTimestamps []int64 // seconds since the first waypoint

	// DifferentialTimestamps are seconds since the previous waypoint.
	// Out of order waypoints make them negative.
	DifferentialTimestamps []int64

	Elevations []float64
	Longitudes []float64
	Latitudes  []float64

	Active []bool

	DifferentialDistances []float64 // meters
	DifferentialAscents   []float64 // meters
	DifferentialDescents  []float64 // meters
	DifferentialSpeeds    []float64 // m/s

	// StartDate is the time of the first waypoint as written in the document.
	StartDate string
}

// Len returns the number of retained waypoints.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.AbsoluteTimestamps)
}

// Check verifies that all slices are index-aligned.
func (s *Series) Check() error {
	n := s.Len()
	lengths := map[string]int{
		"RelativeTimestamps":     len(s.RelativeTimestamps),
		"DifferentialTimestamps": len(s.DifferentialTimestamps),
		"Elevations":             len(s.Elevations),
		"Longitudes":             len(s.Longitudes),
		"Latitudes":              len(s.Latitudes),
		"Active":                 len(s.Active),
		"DifferentialDistances":  len(s.DifferentialDistances),
		"DifferentialAscents":    len(s.DifferentialAscents),
		"DifferentialDescents":   len(s.DifferentialDescents),
		"DifferentialSpeeds":     len(s.DifferentialSpeeds),
	}
	for name, l := range lengths {
		if l != n {
			return fmt.Errorf("series misaligned: %s has %d entries, want %d", name, l, n)
		}
	}
	return nil
}

// Ascent returns the elevation gained from e1 to e2, or 0.
func Ascent(e1, e2 float64) float64 {
	return math.Max(e2-e1, 0)
}

// Descent returns the elevation lost from e1 to e2, or 0.
func Descent(e1, e2 float64) float64 {
	return math.Max(e1-e2, 0)
}

// Compute derives the differential series of wps.
// Implausible speeds are zeroed and reported as warnings; nothing here fails.
func Compute(wps waypoint.Waypoints, config *params.TrackConfig) (*Series, quality.Warnings) {
	if config == nil {
		config = params.DefaultTrackConfig()
	}
	n := len(wps)
	s := &Series{
		AbsoluteTimestamps:     make([]time.Time, n),
		RelativeTimestamps:     make([]int64, n),
		DifferentialTimestamps: make([]int64, n),
		Elevations:             make([]float64, n),
		Longitudes:             make([]float64, n),
		Latitudes:              make([]float64, n),
		Active:                 make([]bool, n),
		DifferentialDistances:  make([]float64, n),
		DifferentialAscents:    make([]float64, n),
		DifferentialDescents:   make([]float64, n),
		DifferentialSpeeds:     make([]float64, n),
	}
	if n == 0 {
		return s, nil
	}
	s.StartDate = wps[0].TimeText

	var warnings quality.Warnings
	first := wps[0].Time
	for i, wp := range wps {
		s.AbsoluteTimestamps[i] = wp.Time
		s.RelativeTimestamps[i] = seconds(wp.Time.Sub(first))
		s.Elevations[i] = wp.Elevation
		s.Longitudes[i] = wp.Lon()
		s.Latitudes[i] = wp.Lat()
		if i == 0 {
			s.Active[i] = true
			continue
		}

		prev := wps[i-1]
		dt := seconds(wp.Time.Sub(prev.Time))
		dist := common.HaversineDistance(prev.Point, wp.Point, config.EarthRadius)

		s.DifferentialTimestamps[i] = dt
		s.DifferentialDistances[i] = dist
		s.DifferentialAscents[i] = Ascent(prev.Elevation, wp.Elevation)
		s.DifferentialDescents[i] = Descent(prev.Elevation, wp.Elevation)
		s.Active[i] = act.Classify(time.Duration(dt)*time.Second, dist, &config.ActConfig)

		if dt == 0 {
			continue
		}
		speed := dist / float64(dt)
		if speed > config.MaxSpeed {
			warnings = append(warnings, quality.Warning{
				Kind:  quality.SpeedClamped,
				Index: i,
				Message: fmt.Sprintf("implausible speed %.1f m/s over %.0f m in %d s between trkpt %d and %d, set to 0",
					speed, dist, dt, prev.Index, wp.Index),
			})
			speed = 0
		}
		s.DifferentialSpeeds[i] = speed
	}
	return s, warnings
}

// seconds truncates d to whole seconds.
func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
