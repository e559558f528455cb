// Package track runs a track document through every stage: validation,
// waypoint extraction, differencing and aggregation.
package track

import (
	"io"
	"log/slog"

	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/gpxstat/common"
	"github.com/rotblauer/gpxstat/events"
	"github.com/rotblauer/gpxstat/geo/diff"
	"github.com/rotblauer/gpxstat/gpx"
	"github.com/rotblauer/gpxstat/metrics"
	"github.com/rotblauer/gpxstat/params"
	"github.com/rotblauer/gpxstat/summary"
	"github.com/rotblauer/gpxstat/types/quality"
	"github.com/rotblauer/gpxstat/types/waypoint"
)

// ErrFileNotFound is returned when the track path is missing or not a regular file.
var ErrFileNotFound = gpx.ErrFileNotFound

// Processor holds configuration only, so one Processor may process
// many documents concurrently.
type Processor struct {
	config *params.TrackConfig
	logger *slog.Logger
}

// NewProcessor returns a Processor. A nil config uses the defaults;
// a nil logger logs nothing.
func NewProcessor(config *params.TrackConfig, logger *slog.Logger) *Processor {
	if config == nil {
		config = params.DefaultTrackConfig()
	}
	return &Processor{
		config: config,
		logger: common.LoggerOrDiscard(logger),
	}
}

// Result is a processed track.
type Result struct {
	Name    string
	Summary summary.Summary

	// Valid is false only for documents processed with force.
	Valid       bool
	Diagnostics []gpx.Diagnostic

	// Warnings are the forced schema violations followed by the clamped speeds.
	Warnings quality.Warnings

	Waypoints waypoint.Waypoints

	// Skipped counts the trackpoints dropped for lacking an elevation.
	Skipped int

	Series   *diff.Series
	Document *gpx.Document
}

// Process reads and processes the track file at path. A leading ~ is expanded.
//
// Errors are ErrFileNotFound, *gpx.ValidationError when the document is
// invalid and force is false, and *gpx.ParseError when a retained trackpoint
// cannot be read. With force, schema violations become warnings.
func (p *Processor) Process(path string, force bool) (*Result, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	doc, err := gpx.Open(expanded)
	if err != nil {
		metrics.TracksFailed.Inc(1)
		p.logger.Error("Failed to open track", "file", path, "error", err)
		return nil, err
	}
	return p.ProcessDocument(doc, force)
}

// ProcessReader processes a document read from r. Name is used in messages only.
func (p *Processor) ProcessReader(name string, r io.Reader, force bool) (*Result, error) {
	doc, err := gpx.ReadDocument(name, r)
	if err != nil {
		metrics.TracksFailed.Inc(1)
		return nil, err
	}
	return p.ProcessDocument(doc, force)
}

// ProcessDocument processes an already read document.
func (p *Processor) ProcessDocument(doc *gpx.Document, force bool) (*Result, error) {
	logger := p.logger.With("file", doc.Name)
	metrics.BytesRead.Mark(int64(len(doc.Bytes())))

	res := &Result{Name: doc.Name, Document: doc}

	validation := gpx.Validate(doc, logger)
	res.Valid, res.Diagnostics = validation.Valid, validation.Diagnostics
	if !validation.Valid {
		metrics.TracksInvalid.Inc(1)
		if !force {
			metrics.TracksFailed.Inc(1)
			return nil, &gpx.ValidationError{Name: doc.Name, Diagnostics: validation.Diagnostics}
		}
		logger.Warn("Processing invalid track", "force", force, "violations", len(validation.Diagnostics))
		for _, d := range validation.Diagnostics {
			res.Warnings = append(res.Warnings, quality.Warning{
				Kind:    quality.SchemaViolation,
				Line:    d.Line,
				Index:   -1,
				Message: d.Message,
			})
		}
	}

	wps, err := gpx.Extract(doc, &p.config.GPXConfig)
	if err != nil {
		metrics.TracksFailed.Inc(1)
		logger.Error("Failed to extract waypoints", "error", err)
		return nil, err
	}
	res.Waypoints = wps
	res.Skipped = doc.TrackpointCount() - len(wps)
	metrics.WaypointsRetained.Inc(int64(len(wps)))
	metrics.WaypointsSkipped.Inc(int64(res.Skipped))
	if res.Skipped > 0 {
		logger.Debug("Skipped trackpoints without elevation", "skipped", res.Skipped)
	}

	series, clamped := diff.Compute(wps, p.config)
	for _, w := range clamped {
		logger.Warn("Clamped implausible speed", "warning", w)
	}
	metrics.SpeedsClamped.Inc(int64(len(clamped)))
	res.Warnings = append(res.Warnings, clamped...)
	res.Series = series

	res.Summary = summary.Aggregate(series, p.config.SkipInactive)
	metrics.TracksProcessed.Inc(1)

	for _, w := range res.Warnings {
		events.WarningFeed.Send(events.Warning{Name: doc.Name, Warning: w})
	}
	events.ProcessedFeed.Send(events.Processed{
		Name:      doc.Name,
		Valid:     res.Valid,
		Waypoints: len(wps),
		Summary:   res.Summary,
	})

	logger.Info("Processed track",
		"waypoints", len(wps),
		"distance", common.FormatDistance(res.Summary.TotalDistanceM),
		"duration", res.Summary.DurationS,
		"warnings", len(res.Warnings))
	return res, nil
}
