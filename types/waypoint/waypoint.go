package waypoint

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// Waypoint is a single recorded trackpoint: a place, a height and a second in time.
// Waypoints are produced by extraction and not modified afterward.
type Waypoint struct {
	// Index is the position of the trkpt element among all trkpt elements
	// of the document, including the ones skipped for lacking elevation.
	Index int

	Point     orb.Point // lon, lat in decimal degrees
	Elevation float64   // meters
	Time      time.Time // UTC, 1 second granularity

	// TimeText and ElevationText are the values as written in the document.
	// Regenerated documents reuse them verbatim for unchanged values.
	TimeText      string
	ElevationText string
}

func (w Waypoint) Lat() float64 {
	return w.Point.Lat()
}

func (w Waypoint) Lon() float64 {
	return w.Point.Lon()
}

func (w Waypoint) String() string {
	return fmt.Sprintf("{#%d %v,%v %.1fm %s}", w.Index, w.Lat(), w.Lon(), w.Elevation, w.TimeText)
}

type Waypoints []Waypoint

// Elevations returns the elevation of each waypoint, in order.
func (ws Waypoints) Elevations() []float64 {
	out := make([]float64, len(ws))
	for i, w := range ws {
		out[i] = w.Elevation
	}
	return out
}

// LineString returns the waypoints as a line, in order.
func (ws Waypoints) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(ws))
	for _, w := range ws {
		ls = append(ls, w.Point)
	}
	return ls
}
