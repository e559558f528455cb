// Package metrics counts what the processor sees, across all tracks of a run.
package metrics

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/rotblauer/gpxstat/params"
)

var Registry = metrics.NewRegistry()

var (
	TracksProcessed   = counter("tracks/processed")
	TracksInvalid     = counter("tracks/invalid")
	TracksFailed      = counter("tracks/failed")
	TracksCached      = counter("tracks/cached")
	WaypointsRetained = counter("waypoints/retained")
	WaypointsSkipped  = counter("waypoints/skipped")
	SpeedsClamped     = counter("speeds/clamped")

	// BytesRead meters document sizes, for throughput.
	BytesRead = metrics.NewRegisteredMeter(params.MetricsPrefix+"bytes/read", Registry)
)

func counter(name string) metrics.Counter {
	return metrics.NewRegisteredCounter(params.MetricsPrefix+name, Registry)
}

// Snapshot returns the current value of every counter, by name without prefix.
func Snapshot() map[string]int64 {
	out := make(map[string]int64)
	Registry.Each(func(name string, i interface{}) {
		name = strings.TrimPrefix(name, params.MetricsPrefix)
		switch m := i.(type) {
		case metrics.Counter:
			out[name] = m.Snapshot().Count()
		case metrics.Meter:
			out[name] = m.Snapshot().Count()
		}
	})
	return out
}

// Log writes the snapshot as a single record.
func Log(logger *slog.Logger) {
	snap := Snapshot()
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)
	args := make([]any, 0, 2*len(names))
	for _, name := range names {
		args = append(args, name, snap[name])
	}
	logger.Info("Metrics", args...)
}
