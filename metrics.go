package statgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector is notified of registry operations. Implement it to
// integrate with monitoring systems; collectors see arena lifecycle and
// tree traversals, never individual counter updates (those are the hot path
// and carry no instrumentation).
type MetricsCollector interface {
	// RecordArenaAlloc is called after each arena allocation.
	RecordArenaAlloc(capacity int)

	// RecordArenaDestroy is called after each DestroyArena.
	RecordArenaDestroy()

	// RecordMerge is called after each whole-tree merge.
	RecordMerge(duration time.Duration)

	// RecordDump is called after each whole-tree dump. format is the
	// emitter name, err is the emitter's flush error (nil on success).
	RecordDump(format string, duration time.Duration, err error)

	// RecordSnapshot is called after each snapshot write or restore. op is
	// "write" or "read", bytes the uncompressed payload size (zero for a
	// restore that failed before the payload was read).
	RecordSnapshot(op string, bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector discards all measurements.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordArenaAlloc(int) {}

func (NoopMetricsCollector) RecordArenaDestroy() {}

func (NoopMetricsCollector) RecordMerge(time.Duration) {}

func (NoopMetricsCollector) RecordDump(string, time.Duration, error) {}

func (NoopMetricsCollector) RecordSnapshot(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory collection, useful for
// debugging without external dependencies.
type BasicMetricsCollector struct {
	ArenasAllocated atomic.Int64
	ArenaBytes      atomic.Int64
	ArenasDestroyed atomic.Int64
	MergeCount      atomic.Int64
	MergeTotalNanos atomic.Int64
	DumpCount       atomic.Int64
	DumpErrors      atomic.Int64
	DumpTotalNanos  atomic.Int64
	SnapshotCount   atomic.Int64
	SnapshotErrors  atomic.Int64
	SnapshotBytes   atomic.Int64
	SnapshotNanos   atomic.Int64
}

// RecordArenaAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordArenaAlloc(capacity int) {
	b.ArenasAllocated.Add(1)
	b.ArenaBytes.Add(int64(capacity))
}

// RecordArenaDestroy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordArenaDestroy() {
	b.ArenasDestroyed.Add(1)
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(duration time.Duration) {
	b.MergeCount.Add(1)
	b.MergeTotalNanos.Add(duration.Nanoseconds())
}

// RecordDump implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDump(format string, duration time.Duration, err error) {
	b.DumpCount.Add(1)
	b.DumpTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DumpErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(op string, bytes int, duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	b.SnapshotBytes.Add(int64(bytes))
	b.SnapshotNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}

// Stats returns a snapshot of current values.
func (b *BasicMetricsCollector) Stats() BasicMetricsStats {
	return BasicMetricsStats{
		ArenasAllocated: b.ArenasAllocated.Load(),
		ArenaBytes:      b.ArenaBytes.Load(),
		ArenasDestroyed: b.ArenasDestroyed.Load(),
		MergeCount:      b.MergeCount.Load(),
		MergeAvgNanos:   avg(b.MergeTotalNanos.Load(), b.MergeCount.Load()),
		DumpCount:       b.DumpCount.Load(),
		DumpErrors:      b.DumpErrors.Load(),
		DumpAvgNanos:    avg(b.DumpTotalNanos.Load(), b.DumpCount.Load()),
		SnapshotCount:   b.SnapshotCount.Load(),
		SnapshotErrors:  b.SnapshotErrors.Load(),
		SnapshotBytes:   b.SnapshotBytes.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ArenasAllocated int64
	ArenaBytes      int64
	ArenasDestroyed int64
	MergeCount      int64
	MergeAvgNanos   int64
	DumpCount       int64
	DumpErrors      int64
	DumpAvgNanos    int64
	SnapshotCount   int64
	SnapshotErrors  int64
	SnapshotBytes   int64
}
