package track

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
	"github.com/rotblauer/gpxstat/params"
)

// Feature returns the track as a GeoJSON LineString feature carrying the
// summary as properties. The line is simplified with Douglas-Peucker;
// a threshold of 0 keeps every waypoint.
func Feature(res *Result, config *params.SimplificationConfig) *geojson.Feature {
	if config == nil {
		config = params.DefaultSimplificationConfig
	}
	ls := res.Waypoints.LineString()
	if config.DouglasPeuckerThreshold > 0 && len(ls) > 2 {
		ls = simplify.DouglasPeucker(config.DouglasPeuckerThreshold).LineString(ls.Clone())
	}

	f := geojson.NewFeature(ls)
	if len(ls) > 0 {
		f.BBox = geojson.NewBBox(ls.Bound())
	}
	s := res.Summary
	f.Properties = geojson.Properties{
		"name":             res.Name,
		"valid":            res.Valid,
		"waypoints":        len(res.Waypoints),
		"points":           len(ls),
		"start_date":       s.StartDate,
		"total_distance_m": s.TotalDistanceM,
		"duration_s":       s.DurationS,
		"total_duration_s": s.TotalDurationS,
		"total_ascent_m":   s.TotalAscentM,
		"total_descent_m":  s.TotalDescentM,
		"avg_speed_kmh":    s.AvgSpeedKMH,
		"max_speed_kmh":    s.MaxSpeedKMH,
	}
	return f
}

// Bound returns the bounding box of the retained waypoints.
func Bound(res *Result) orb.Bound {
	return res.Waypoints.LineString().Bound()
}
