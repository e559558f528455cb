package track

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rotblauer/gpxstat/gpx"
	"github.com/rotblauer/gpxstat/metrics"
	"github.com/rotblauer/gpxstat/params"
	"github.com/rotblauer/gpxstat/state"
	"github.com/rotblauer/gpxstat/stream"
)

// Cache remembers entries of processed documents.
// *state.Store is the persistent implementation.
type Cache interface {
	Get(key string) (state.Entry, bool, error)
	Put(key string, e state.Entry) error
}

type BatchConfig struct {
	Workers int
	Force   bool

	// Cache, if not nil, is consulted before and filled after processing.
	Cache Cache
}

// BatchResult is the outcome for one path of a batch.
// Exactly one of Err, DuplicateOf and Entry is meaningful.
type BatchResult struct {
	Path  string
	Entry state.Entry

	// Result is nil for cached entries.
	Result *Result
	Cached bool

	// DuplicateOf is the path of an earlier document in the batch
	// with identical content.
	DuplicateOf string

	Err error
}

// EntryOf returns the cacheable part of res.
func EntryOf(res *Result) state.Entry {
	return state.Entry{
		Name:      res.Name,
		Valid:     res.Valid,
		Waypoints: len(res.Waypoints),
		Warnings:  len(res.Warnings),
		Summary:   res.Summary,
	}
}

// Batch processes paths concurrently. Results arrive in completion order.
// Documents identical to one already seen in the batch are reported as
// duplicates and not processed again. Cancelling ctx stops the batch between documents.
func (p *Processor) Batch(ctx context.Context, paths []string, config BatchConfig) <-chan BatchResult {
	if config.Workers < 1 {
		config.Workers = params.DefaultBatchWorkers
	}
	seen, err := lru.New[string, string](params.DedupeLength)
	if err != nil {
		panic(err)
	}
	return stream.Workers(ctx, config.Workers, func(path string) BatchResult {
		return p.batchOne(path, config, seen)
	}, stream.Slice(ctx, paths))
}

func (p *Processor) batchOne(path string, config BatchConfig, seen *lru.Cache[string, string]) BatchResult {
	out := BatchResult{Path: path}
	doc, err := gpx.Open(path)
	if err != nil {
		metrics.TracksFailed.Inc(1)
		out.Err = err
		return out
	}
	key, err := state.Key(doc.Bytes(), p.config)
	if err != nil {
		out.Err = err
		return out
	}
	if first, dup, _ := seen.PeekOrAdd(key, path); dup {
		p.logger.Warn("Skipping duplicate track", "file", path, "duplicate.of", first)
		out.DuplicateOf = first
		return out
	}

	if config.Cache != nil {
		entry, ok, err := config.Cache.Get(key)
		if err != nil {
			p.logger.Error("Failed to read cached summary", "file", path, "error", err)
		} else if ok && (entry.Valid || config.Force) {
			metrics.TracksCached.Inc(1)
			p.logger.Debug("Using cached summary", "file", path)
			entry.Name = path
			out.Entry, out.Cached = entry, true
			return out
		}
	}

	res, err := p.ProcessDocument(doc, config.Force)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result, out.Entry = res, EntryOf(res)
	if config.Cache != nil {
		if err := config.Cache.Put(key, out.Entry); err != nil {
			p.logger.Error("Failed to cache summary", "file", path, "error", err)
		}
	}
	return out
}
