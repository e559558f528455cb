package stream

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/rotblauer/gpxstat/common"
)

// ProgressMeter periodically logs how many documents a pipeline has handled
// and how fast.
type ProgressMeter struct {
	label      atomic.Value // string, eg the last file name
	interval   time.Duration
	started    time.Time
	ticker     *time.Ticker
	done       chan struct{}
	count      metrics.Counter
	countMeter metrics.Meter
	sizeMeter  metrics.Meter
	logger     *slog.Logger
}

func NewProgressMeter(interval time.Duration, logger *slog.Logger) *ProgressMeter {
	pm := &ProgressMeter{
		interval:   interval,
		started:    time.Now(),
		done:       make(chan struct{}),
		count:      metrics.NewCounter(),
		countMeter: metrics.NewMeter(),
		sizeMeter:  metrics.NewMeter(),
		logger:     common.LoggerOrDiscard(logger),
	}
	pm.label.Store("")
	pm.ticker = time.NewTicker(interval)
	go pm.run()
	return pm
}

// Mark records one handled document. size is added to the size meter.
func (pm *ProgressMeter) Mark(label string, size int) {
	pm.label.Store(label)
	pm.count.Inc(1)
	pm.countMeter.Mark(1)
	pm.sizeMeter.Mark(int64(size))
}

// Count returns the number of marked documents.
func (pm *ProgressMeter) Count() int64 {
	return pm.count.Snapshot().Count()
}

func (pm *ProgressMeter) run() {
	for {
		select {
		case <-pm.done:
			return
		case <-pm.ticker.C:
			pm.log()
		}
	}
}

func (pm *ProgressMeter) log() {
	countSnap := pm.countMeter.Snapshot()
	sizeSnap := pm.sizeMeter.Snapshot()

	pm.logger.Info("Processed tracks", "n", humanize.Comma(countSnap.Count()),
		"last", pm.label.Load(),
		"tps", common.DecimalToFixed(countSnap.RateMean(), 2),
		"total.bytes", humanize.Bytes(uint64(sizeSnap.Count())),
		"running", time.Since(pm.started).Round(time.Second))
}

// Stop stops the ticker and logs a final line.
func (pm *ProgressMeter) Stop() {
	if pm == nil || pm.ticker == nil {
		return
	}
	pm.ticker.Stop()
	close(pm.done)
	pm.log()
	pm.countMeter.Stop()
	pm.sizeMeter.Stop()
}
