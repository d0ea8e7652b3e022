package alloc

import (
	"context"
	"unsafe"

	"github.com/RuchDB/ruchdb/internal/conv"
	"github.com/RuchDB/ruchdb/internal/resource"
)

// Allocator hands out raw blocks described by layouts.
//
// Allocation never fails from the caller's point of view: it either returns a
// valid block or terminates the process (see SetFailureHook).
type Allocator struct {
	host    Host
	budget  *resource.Controller
	metrics MetricsCollector
	logger  *Logger
}

// New creates an Allocator.
func New(opts ...Option) *Allocator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Allocator{
		host:    o.host,
		budget:  o.budget(),
		metrics: o.metricsCollector,
		logger:  o.logger.WithHost(o.host.Name()),
	}
}

// Host returns the host the allocator delegates to.
func (a *Allocator) Host() Host {
	return a.host
}

// MemoryUsage returns the bytes currently held through the allocator.
func (a *Allocator) MemoryUsage() int64 {
	return a.budget.MemoryUsage()
}

// PeakMemoryUsage returns the highest MemoryUsage observed.
func (a *Allocator) PeakMemoryUsage() int64 {
	return a.budget.PeakMemoryUsage()
}

// MemoryLimit returns the configured limit in bytes (0 if unlimited).
func (a *Allocator) MemoryLimit() int64 {
	return a.budget.MemoryLimit()
}

// Allocate returns a block of l.Size bytes aligned to l.Align. The contents
// are unspecified. The returned size always equals l.Size.
func (a *Allocator) Allocate(l Layout) (unsafe.Pointer, uintptr) {
	return a.allocate(l, false)
}

// AllocateZeroed is like Allocate, but the block is zero-initialized.
func (a *Allocator) AllocateZeroed(l Layout) (unsafe.Pointer, uintptr) {
	return a.allocate(l, true)
}

func (a *Allocator) allocate(l Layout, zeroed bool) (unsafe.Pointer, uintptr) {
	l.mustValidate()

	a.acquire(l, l.Size)
	ptr := a.host.Alloc(l.Size, l.Align, zeroed)
	if ptr == nil {
		a.release(l.Size)
		a.fail(l, ErrOutOfMemory)
	}

	a.metrics.RecordAlloc(l.Size, zeroed)
	a.logger.LogAlloc(context.Background(), l, zeroed)
	return ptr, l.Size
}

// Deallocate releases a block obtained with the same layout.
// A nil ptr is a no-op. ptr must not be used afterwards.
func (a *Allocator) Deallocate(ptr unsafe.Pointer, l Layout) {
	if ptr == nil {
		return
	}

	a.host.Free(ptr, l.Size, l.Align)
	a.release(l.Size)

	a.metrics.RecordFree(l.Size)
	a.logger.LogFree(context.Background(), l)
}

// Reallocate resizes a block from oldLayout to newLayout.
//
// If the sizes are equal, ptr is returned unchanged. A nil ptr behaves as
// Allocate(newLayout). Otherwise the block may be resized in place or
// relocated; callers must use the returned pointer and treat ptr as released.
// Both layouts must have the same alignment.
func (a *Allocator) Reallocate(ptr unsafe.Pointer, oldLayout, newLayout Layout) (unsafe.Pointer, uintptr) {
	if newLayout.Size == oldLayout.Size {
		return ptr, newLayout.Size
	}
	if ptr == nil {
		return a.Allocate(newLayout)
	}

	newLayout.mustValidate()
	if oldLayout.Align != newLayout.Align {
		panic(&LayoutError{Layout: newLayout, Err: ErrAlignMismatch})
	}

	grow := newLayout.Size > oldLayout.Size
	if grow {
		a.acquire(newLayout, newLayout.Size-oldLayout.Size)
	}

	newPtr := a.host.Realloc(ptr, oldLayout.Size, newLayout.Size, newLayout.Align)
	if newPtr == nil {
		if grow {
			a.release(newLayout.Size - oldLayout.Size)
		}
		a.fail(newLayout, ErrOutOfMemory)
	}

	if !grow {
		a.release(oldLayout.Size - newLayout.Size)
	}

	moved := newPtr != ptr
	a.metrics.RecordRealloc(oldLayout.Size, newLayout.Size, moved)
	a.logger.LogRealloc(context.Background(), oldLayout, newLayout, moved)
	return newPtr, newLayout.Size
}

func (a *Allocator) acquire(l Layout, n uintptr) {
	bytes, err := conv.UintptrToInt64(n)
	if err != nil {
		a.fail(l, ErrOutOfMemory)
	}
	if err := a.budget.AcquireMemory(bytes); err != nil {
		a.fail(l, err)
	}
}

func (a *Allocator) release(n uintptr) {
	// n was acquired, so it fits in an int64.
	a.budget.ReleaseMemory(int64(n))
}

// Fail reports l as unsatisfiable. The failure is logged and recorded, the
// failure hook runs and the process terminates. Fail never returns.
//
// Layers above the allocator use it for requests whose size cannot be
// represented, so they take the same path as an exhausted host.
func (a *Allocator) Fail(l Layout) {
	a.fail(l, ErrOutOfMemory)
}

func (a *Allocator) fail(l Layout, cause error) {
	a.metrics.RecordFailure(l.Size)
	a.logger.LogFailure(context.Background(), l, cause)
	handleAllocError(l)
}
