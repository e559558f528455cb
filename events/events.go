package events

import (
	"github.com/ethereum/go-ethereum/event"
	"github.com/rotblauer/gpxstat/summary"
	"github.com/rotblauer/gpxstat/types/quality"
)

// Warning is a data quality warning raised while processing the named document.
type Warning struct {
	Name    string
	Warning quality.Warning
}

// Processed reports a document that made it through every stage.
type Processed struct {
	Name      string
	Valid     bool
	Waypoints int
	Summary   summary.Summary
}

// WarningFeed is sent every data quality warning, forced schema violations and clamped speeds alike.
// Sends block until every subscriber has received, so subscribers must keep reading.
var WarningFeed = event.FeedOf[Warning]{}

// ProcessedFeed is sent one event per successfully processed document.
var ProcessedFeed = event.FeedOf[Processed]{}
