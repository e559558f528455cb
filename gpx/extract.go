package gpx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/paulmach/orb"
	"github.com/rotblauer/gpxstat/params"
	"github.com/rotblauer/gpxstat/types/waypoint"
)

// Extract returns the waypoints of every trkpt in document order, across all
// tracks and segments. Trackpoints without an elevation are skipped.
// The document is not modified.
func Extract(doc *Document, cfg *params.GPXConfig) (waypoint.Waypoints, error) {
	if cfg == nil {
		cfg = params.DefaultGPXConfig
	}
	if doc.parseErr != nil {
		return nil, &ParseError{Name: doc.Name, Index: -1, Err: doc.parseErr}
	}

	trkpts := trackpoints(doc.tree.Root())
	out := make(waypoint.Waypoints, 0, len(trkpts))
	for i, el := range trkpts {
		ele := childElement(el, "ele")
		if ele == nil || strings.TrimSpace(ele.Text()) == "" {
			continue
		}
		perr := func(field, value string, err error) error {
			return &ParseError{Name: doc.Name, Index: i, Field: field, Value: value, Err: err}
		}

		wp := waypoint.Waypoint{Index: i, ElevationText: ele.Text()}
		elevation, err := strconv.ParseFloat(strings.TrimSpace(wp.ElevationText), 64)
		if err != nil {
			return nil, perr("ele", wp.ElevationText, err)
		}
		wp.Elevation = elevation

		lat, err := coordinate(el, "lat", 90)
		if err != nil {
			return nil, perr("lat", el.SelectAttrValue("lat", ""), err)
		}
		lon, err := coordinate(el, "lon", 180)
		if err != nil {
			return nil, perr("lon", el.SelectAttrValue("lon", ""), err)
		}
		wp.Point = orb.Point{lon, lat}

		tm := childElement(el, "time")
		if tm == nil {
			return nil, perr("time", "", errMissing)
		}
		wp.TimeText = strings.TrimSpace(tm.Text())
		t, err := time.Parse(cfg.TimeLayout, wp.TimeText)
		if err != nil {
			return nil, perr("time", wp.TimeText, err)
		}
		wp.Time = t.UTC().Truncate(time.Second)

		out = append(out, wp)
	}
	return out, nil
}

// coordinate reads a decimal degree attribute bounded by ±limit.
func coordinate(el *etree.Element, key string, limit float64) (float64, error) {
	attr := el.SelectAttr(key)
	if attr == nil {
		return 0, errMissing
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
	if err != nil {
		return 0, err
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%w: %v", errRange, v)
	}
	return v, nil
}
