package waypoint

import (
	"slices"
	"testing"
	"time"

	"github.com/paulmach/orb"
)

func TestWaypoints(t *testing.T) {
	ws := Waypoints{
		{Index: 0, Point: orb.Point{7.0, 46.0}, Elevation: 1000, Time: time.Unix(0, 0).UTC()},
		{Index: 2, Point: orb.Point{7.001, 46.001}, Elevation: 1005.5, Time: time.Unix(1, 0).UTC()},
	}
	if got := ws.Elevations(); !slices.Equal(got, []float64{1000, 1005.5}) {
		t.Errorf("expected [1000 1005.5], got %v", got)
	}
	ls := ws.LineString()
	if len(ls) != 2 {
		t.Fatalf("expected 2 points, got %d", len(ls))
	}
	if ls[1].Lat() != 46.001 || ls[1].Lon() != 7.001 {
		t.Errorf("expected lat=46.001 lon=7.001, got lat=%v lon=%v", ls[1].Lat(), ls[1].Lon())
	}
	if ws[1].Lat() != 46.001 {
		t.Errorf("expected Lat 46.001, got %v", ws[1].Lat())
	}
}
