package stream

import (
	"context"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/metrics"
	_ "github.com/rotblauer/gpxstat/params"
)

func divideByTwo(n int) int {
	return n / 2
}

func TestSliceCollect(t *testing.T) {
	data := []int{0, 2, 4, 6, 8}
	ctx := context.Background()
	result := Collect(ctx, Slice(ctx, data))
	if !slices.Equal(data, result) {
		t.Errorf("Expected %v, got %v", data, result)
	}
}

func TestWorkers(t *testing.T) {
	data := make([]int, 100)
	for i := range data {
		data[i] = i * 2
	}
	ctx := context.Background()
	var running, peak atomic.Int32
	result := Collect(ctx, Workers(ctx, 4, func(n int) int {
		if r := running.Add(1); r > peak.Load() {
			peak.Store(r)
		}
		time.Sleep(time.Millisecond)
		running.Add(-1)
		return divideByTwo(n)
	}, Slice(ctx, data)))

	slices.Sort(result)
	if len(result) != 100 || result[0] != 0 || result[99] != 99 {
		t.Errorf("Expected 0..99, got %v", result)
	}
	if peak.Load() > 4 {
		t.Errorf("Expected at most 4 concurrent workers, got %d", peak.Load())
	}
}

func TestWorkersCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan int)
	out := Workers(ctx, 2, divideByTwo, in)
	cancel()
	select {
	case _, ok := <-out:
		if ok {
			t.Error("Expected no output after cancel")
		}
	case <-time.After(time.Second):
		t.Error("Expected output to close after cancel")
	}
}

func TestMeter(t *testing.T) {
	m := metrics.NewMeter()
	m.Mark(47)
	if v := m.Snapshot().Count(); v != 47 {
		t.Fatalf("have %d want %d", v, 47)
	}
	m.Stop()
}

func TestProgressMeter(t *testing.T) {
	pm := NewProgressMeter(time.Hour, nil)
	pm.Mark("a.gpx", 100)
	pm.Mark("b.gpx", 50)
	if n := pm.Count(); n != 2 {
		t.Errorf("Expected 2, got %d", n)
	}
	pm.Stop()
}
