package alloc

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use and must not allocate
// through the allocator they observe.
type MetricsCollector interface {
	// RecordAlloc is called after each successful allocation.
	RecordAlloc(size uintptr, zeroed bool)

	// RecordRealloc is called after each successful reallocation that
	// changed the size. moved reports whether the block was relocated.
	RecordRealloc(oldSize, newSize uintptr, moved bool)

	// RecordFree is called after each deallocation of a non-nil block.
	RecordFree(size uintptr)

	// RecordFailure is called when a request cannot be satisfied, right
	// before the process terminates.
	RecordFailure(size uintptr)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(uintptr, bool)            {}
func (NoopMetricsCollector) RecordRealloc(uintptr, uintptr, bool) {}
func (NoopMetricsCollector) RecordFree(uintptr)                   {}
func (NoopMetricsCollector) RecordFailure(uintptr)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and leak checks without external dependencies.
type BasicMetricsCollector struct {
	AllocCount      atomic.Int64
	ZeroedCount     atomic.Int64
	ReallocCount    atomic.Int64
	RelocatedCount  atomic.Int64
	FreeCount       atomic.Int64
	FailureCount    atomic.Int64
	BytesAllocated  atomic.Int64
	BytesFreed      atomic.Int64
	LiveBytes       atomic.Int64
	PeakLiveBytes   atomic.Int64
	LastFailureSize atomic.Uint64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(size uintptr, zeroed bool) {
	b.AllocCount.Add(1)
	if zeroed {
		b.ZeroedCount.Add(1)
	}
	b.BytesAllocated.Add(int64(size))
	b.addLive(int64(size))
}

// RecordRealloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRealloc(oldSize, newSize uintptr, moved bool) {
	b.ReallocCount.Add(1)
	if moved {
		b.RelocatedCount.Add(1)
	}
	if newSize > oldSize {
		b.BytesAllocated.Add(int64(newSize - oldSize))
	} else {
		b.BytesFreed.Add(int64(oldSize - newSize))
	}
	b.addLive(int64(newSize) - int64(oldSize))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(size uintptr) {
	b.FreeCount.Add(1)
	b.BytesFreed.Add(int64(size))
	b.addLive(-int64(size))
}

// RecordFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFailure(size uintptr) {
	b.FailureCount.Add(1)
	b.LastFailureSize.Store(uint64(size))
}

func (b *BasicMetricsCollector) addLive(delta int64) {
	live := b.LiveBytes.Add(delta)
	for {
		peak := b.PeakLiveBytes.Load()
		if live <= peak || b.PeakLiveBytes.CompareAndSwap(peak, live) {
			return
		}
	}
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:     b.AllocCount.Load(),
		ZeroedCount:    b.ZeroedCount.Load(),
		ReallocCount:   b.ReallocCount.Load(),
		RelocatedCount: b.RelocatedCount.Load(),
		FreeCount:      b.FreeCount.Load(),
		FailureCount:   b.FailureCount.Load(),
		BytesAllocated: b.BytesAllocated.Load(),
		BytesFreed:     b.BytesFreed.Load(),
		LiveBytes:      b.LiveBytes.Load(),
		PeakLiveBytes:  b.PeakLiveBytes.Load(),
	}
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	AllocCount     int64
	ZeroedCount    int64
	ReallocCount   int64
	RelocatedCount int64
	FreeCount      int64
	FailureCount   int64
	BytesAllocated int64
	BytesFreed     int64
	LiveBytes      int64
	PeakLiveBytes  int64
}
