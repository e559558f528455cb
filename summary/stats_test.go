package summary

import (
	"testing"
)

func TestSpeeds(t *testing.T) {
	s := threeWaypoints(t)
	all := Speeds(s, false)
	if all.Intervals != 2 {
		t.Fatalf("expected 2 intervals, got %d", all.Intervals)
	}
	if all.MeanKMH != 2.5 || all.MedianKMH != 2.5 {
		t.Errorf("expected mean and median 2.5, got %+v", all)
	}
	active := Speeds(s, true)
	if active.Intervals != 1 || active.MeanKMH != 4.0 {
		t.Errorf("expected 1 interval at 4.0, got %+v", active)
	}
	if none := Speeds(series(t), true); none != (SpeedStats{}) {
		t.Errorf("expected zero stats, got %+v", none)
	}
}

func TestCombine(t *testing.T) {
	if o := Combine(nil); o != (Overall{}) {
		t.Errorf("expected zero value, got %+v", o)
	}
	o := Combine([]Summary{
		{TotalDistanceM: 1000, DurationS: 600, TotalAscentM: 10, TotalDescentM: 5, AvgSpeedKMH: 6, MaxSpeedKMH: 12.5},
		{TotalDistanceM: 500, DurationS: 100, TotalAscentM: 1, TotalDescentM: 2, AvgSpeedKMH: 18, MaxSpeedKMH: 30.1},
	})
	want := Overall{
		Tracks:         2,
		TotalDistanceM: 1500,
		DurationS:      700,
		TotalAscentM:   11,
		TotalDescentM:  7,
		MaxSpeedKMH:    30.1,
		AvgSpeedKMH:    12,
	}
	if o != want {
		t.Errorf("expected %+v, got %+v", want, o)
	}
}
