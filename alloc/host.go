package alloc

import (
	"unsafe"

	"github.com/RuchDB/ruchdb/internal/conv"
	"github.com/RuchDB/ruchdb/internal/mem"
	"github.com/RuchDB/ruchdb/internal/mmap"
)

// Host is the underlying memory source of an Allocator.
//
// Alloc and Realloc return nil when the request cannot be satisfied. Sizes
// are never zero and alignments are always powers of two. Realloc may
// return ptr itself or a new block; the first min(oldSize, newSize) bytes
// are preserved either way.
type Host interface {
	Name() string
	Alloc(size, align uintptr, zeroed bool) unsafe.Pointer
	Realloc(ptr unsafe.Pointer, oldSize, newSize, align uintptr) unsafe.Pointer
	Free(ptr unsafe.Pointer, size, align uintptr)
}

type goHeap struct{}

// GoHeap returns the host backed by the Go heap.
func GoHeap() Host { return goHeap{} }

func (goHeap) Name() string { return "goheap" }

func (goHeap) Alloc(size, align uintptr, _ bool) unsafe.Pointer {
	// Go heap blocks are always zeroed.
	return mem.AllocAligned(size, align)
}

func (goHeap) Realloc(ptr unsafe.Pointer, oldSize, newSize, align uintptr) unsafe.Pointer {
	return mem.Realloc(ptr, oldSize, newSize, align)
}

// Free is a no-op: the block is reclaimed once nothing references it.
func (goHeap) Free(unsafe.Pointer, uintptr, uintptr) {}

type offHeap struct{}

// OffHeap returns the host backed by anonymous memory mappings.
// Alignments up to the page size are supported.
func OffHeap() Host { return offHeap{} }

func (offHeap) Name() string { return "offheap" }

func (offHeap) checkAlign(size, align uintptr) {
	if align > uintptr(mmap.PageSize()) {
		panic(&LayoutError{Layout: Layout{Size: size, Align: align}, Err: ErrBadAlignment})
	}
}

func (h offHeap) Alloc(size, align uintptr, _ bool) unsafe.Pointer {
	h.checkAlign(size, align)

	n, err := conv.UintptrToInt(size)
	if err != nil {
		return nil
	}
	// Anonymous mappings are always zeroed.
	b, err := mmap.MapAnon(n)
	if err != nil {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

func (h offHeap) Realloc(ptr unsafe.Pointer, oldSize, newSize, align uintptr) unsafe.Pointer {
	h.checkAlign(newSize, align)

	n, err := conv.UintptrToInt(newSize)
	if err != nil {
		return nil
	}
	b, err := mmap.Remap(unsafe.Slice((*byte)(ptr), oldSize), n) //nolint:gosec // ptr maps exactly oldSize bytes
	if err != nil {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

func (offHeap) Free(ptr unsafe.Pointer, size, _ uintptr) {
	// The only failure is a slice that was never mapped, which is caller UB.
	_ = mmap.Unmap(unsafe.Slice((*byte)(ptr), size)) //nolint:gosec // ptr maps exactly size bytes
}
