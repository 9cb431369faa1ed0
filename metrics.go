package soa

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting table metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by many tables living in different goroutines,
// so implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordGrow is called whenever all columns are reallocated to a larger
	// capacity. ShrinkToFit does not report.
	RecordGrow(oldCap, newCap int)

	// RecordReorder is called after a permutation has been applied
	// (ApplyIndex and the SortBy family).
	RecordReorder(rows int, duration time.Duration)

	// RecordCompact is called after RemoveSet or Retain.
	RecordCompact(removed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)              {}
func (NoopMetricsCollector) RecordReorder(int, time.Duration) {}
func (NoopMetricsCollector) RecordCompact(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	GrowCount         atomic.Int64
	GrownRows         atomic.Int64 // sum of newCap - oldCap
	ReorderCount      atomic.Int64
	ReorderRows       atomic.Int64
	ReorderTotalNanos atomic.Int64
	CompactCount      atomic.Int64
	CompactRemoved    atomic.Int64
	CompactTotalNanos atomic.Int64
}

func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap int) {
	b.GrowCount.Add(1)
	b.GrownRows.Add(int64(newCap - oldCap))
}

func (b *BasicMetricsCollector) RecordReorder(rows int, d time.Duration) {
	b.ReorderCount.Add(1)
	b.ReorderRows.Add(int64(rows))
	b.ReorderTotalNanos.Add(d.Nanoseconds())
}

func (b *BasicMetricsCollector) RecordCompact(removed int, d time.Duration) {
	b.CompactCount.Add(1)
	b.CompactRemoved.Add(int64(removed))
	b.CompactTotalNanos.Add(d.Nanoseconds())
}

// MetricsStats is a point-in-time snapshot of a BasicMetricsCollector.
type MetricsStats struct {
	GrowCount        int64
	GrownRows        int64
	ReorderCount     int64
	ReorderedRows    int64
	AvgReorderMicros float64
	CompactCount     int64
	CompactedRows    int64
	AvgCompactMicros float64
}

// Stats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) Stats() MetricsStats {
	s := MetricsStats{
		GrowCount:     b.GrowCount.Load(),
		GrownRows:     b.GrownRows.Load(),
		ReorderCount:  b.ReorderCount.Load(),
		ReorderedRows: b.ReorderRows.Load(),
		CompactCount:  b.CompactCount.Load(),
		CompactedRows: b.CompactRemoved.Load(),
	}
	if s.ReorderCount > 0 {
		s.AvgReorderMicros = float64(b.ReorderTotalNanos.Load()) / float64(s.ReorderCount) / 1000
	}
	if s.CompactCount > 0 {
		s.AvgCompactMicros = float64(b.CompactTotalNanos.Load()) / float64(s.CompactCount) / 1000
	}
	return s
}

var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)
