package common

import (
	"math"

	"github.com/paulmach/orb"
)

// HaversineDistance returns the great-circle distance in meters between two
// points on a sphere of the given radius (meters).
// Identical points are exactly 0 apart.
// https://en.wikipedia.org/wiki/Haversine_formula
func HaversineDistance(a, b orb.Point, radius float64) float64 {
	lat1, lat2 := Radians(a.Lat()), Radians(b.Lat())
	dLat := lat2 - lat1
	dLon := Radians(b.Lon() - a.Lon())

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)

	// Rounding can push h a hair outside [0, 1] for antipodal points.
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return radius * c
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
