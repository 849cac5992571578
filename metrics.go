package easyspot

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dustin/go-humanize"
)

// MetricsCollector defines an interface for collecting allocation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    liveBytes prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordAllocate(size int) {
//	    p.liveBytes.Add(float64(size))
//	}
type MetricsCollector interface {
	// RecordAllocate is called after each successful allocation with the
	// payload size in bytes.
	RecordAllocate(size int)

	// RecordDrop is called after each drop with the payload size in bytes.
	RecordDrop(size int)

	// RecordFault is called with the fault kind (one of the Err* values)
	// right before the process terminates.
	RecordFault(kind error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int) {}
func (NoopMetricsCollector) RecordDrop(int)     {}
func (NoopMetricsCollector) RecordFault(error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount    atomic.Int64
	AllocBytes    atomic.Int64
	DropCount     atomic.Int64
	DropBytes     atomic.Int64
	PeakLiveBytes atomic.Int64
	UseAfterFree  atomic.Int64
	DoubleDrops   atomic.Int64
	OutOfBounds   atomic.Int64
	OtherFaults   atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(size int) {
	b.AllocCount.Add(1)
	allocated := b.AllocBytes.Add(int64(size))
	live := allocated - b.DropBytes.Load()
	for {
		peak := b.PeakLiveBytes.Load()
		if live <= peak || b.PeakLiveBytes.CompareAndSwap(peak, live) {
			break
		}
	}
}

// RecordDrop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDrop(size int) {
	b.DropCount.Add(1)
	b.DropBytes.Add(int64(size))
}

// RecordFault implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFault(kind error) {
	switch {
	case errors.Is(kind, ErrUseAfterFree):
		b.UseAfterFree.Add(1)
	case errors.Is(kind, ErrDoubleDrop):
		b.DoubleDrops.Add(1)
	case errors.Is(kind, ErrOutOfBounds):
		b.OutOfBounds.Add(1)
	default:
		b.OtherFaults.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	allocCount := b.AllocCount.Load()
	allocBytes := b.AllocBytes.Load()
	dropCount := b.DropCount.Load()
	dropBytes := b.DropBytes.Load()
	return BasicMetricsStats{
		AllocCount:    allocCount,
		AllocBytes:    allocBytes,
		DropCount:     dropCount,
		DropBytes:     dropBytes,
		LiveBlocks:    allocCount - dropCount,
		LiveBytes:     allocBytes - dropBytes,
		PeakLiveBytes: b.PeakLiveBytes.Load(),
		UseAfterFree:  b.UseAfterFree.Load(),
		DoubleDrops:   b.DoubleDrops.Load(),
		OutOfBounds:   b.OutOfBounds.Load(),
		OtherFaults:   b.OtherFaults.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount    int64
	AllocBytes    int64
	DropCount     int64
	DropBytes     int64
	LiveBlocks    int64
	LiveBytes     int64
	PeakLiveBytes int64
	UseAfterFree  int64
	DoubleDrops   int64
	OutOfBounds   int64
	OtherFaults   int64
}

func (s BasicMetricsStats) String() string {
	return fmt.Sprintf(
		"Stats{allocs: %s (%s), drops: %s (%s), live: %s (%s), peak: %s}",
		humanize.Comma(s.AllocCount), humanize.IBytes(uint64(max(s.AllocBytes, 0))),
		humanize.Comma(s.DropCount), humanize.IBytes(uint64(max(s.DropBytes, 0))),
		humanize.Comma(s.LiveBlocks), humanize.IBytes(uint64(max(s.LiveBytes, 0))),
		humanize.IBytes(uint64(max(s.PeakLiveBytes, 0))),
	)
}
