package params

import (
	"compress/gzip"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/mitchellh/go-homedir"
)

func init() {
	// Counters and meters are no-ops unless enabled before they are created.
	metrics.Enabled = true
}

// MetricsPrefix namespaces every registered metric.
const MetricsPrefix = "gpxstat/"

var DatadirRoot = func() string {
	home, err := homedir.Dir()
	if err != nil {
		panic(err)
	}
	return filepath.Join(home, ".gpxstat")
}()

const (
	CacheDBName       = "summaries.db"
	CacheMemoryLength = 1_000
	CacheMemoryTTL    = 10 * time.Minute

	// DedupeLength bounds how many distinct documents a batch remembers
	// when looking for duplicate inputs.
	DedupeLength = 10_000
)

var CacheBucket = []byte("summaries")

var DefaultBatchWorkers = 4

var DefaultProgressInterval = 5 * time.Second

var DefaultGZipCompressionLevel = gzip.BestCompression
