package state

import (
	"errors"
	"testing"

	"github.com/rotblauer/gpxstat/params"
	"github.com/rotblauer/gpxstat/summary"
)

func TestStore(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	key, err := Key([]byte("<gpx/>"), params.DefaultTrackConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := s.Get(key); ok || err != nil {
		t.Fatalf("expected miss, got %v %v", ok, err)
	}
	want := Entry{
		Name:      "ride.gpx",
		Valid:     true,
		Waypoints: 3,
		Summary:   summary.Summary{TotalDistanceM: 22.25, DurationS: 10, StartDate: "2024-06-01T08:00:00Z"},
	}
	if err := s.Put(key, want); err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.Get(key)
	if err != nil || !ok {
		t.Fatalf("expected hit, got %v %v", ok, err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopened read-only, the entry comes from disk.
	s, err = Open(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, ok, err = s.Get(key)
	if err != nil || !ok {
		t.Fatalf("expected hit after reopen, got %v %v", ok, err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if n, err := s.Len(); err != nil || n != 1 {
		t.Errorf("expected 1 entry, got %d %v", n, err)
	}
	if err := s.Put(key, want); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestKey(t *testing.T) {
	config := params.DefaultTrackConfig()
	a, _ := Key([]byte("a"), config)
	b, _ := Key([]byte("b"), config)
	if a == b {
		t.Error("expected content to change the key")
	}
	again, _ := Key([]byte("a"), params.DefaultTrackConfig())
	if a != again {
		t.Errorf("expected stable keys, got %s and %s", a, again)
	}
	config.SkipInactive = false
	c, _ := Key([]byte("a"), config)
	if a == c {
		t.Error("expected config to change the key")
	}
}
