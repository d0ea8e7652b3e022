package mem

import (
	"unsafe"
)

// WordAlign is the alignment the Go heap guarantees for a []uint64 backing array.
const WordAlign = 8

// AllocAligned allocates a zeroed block of size bytes whose address is a
// multiple of align. align must be a power of two.
//
// The block is backed by a []uint64 so the garbage collector treats it as
// pointer-free memory. It stays alive for as long as any pointer into it is
// reachable; there is no explicit free.
//
// One trailing word is always reserved, so ptr+size still points inside the
// backing object and keeps it alive. Callers may hold only an end pointer.
func AllocAligned(size, align uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}

	if align <= WordAlign {
		n := (size+WordAlign-1)/WordAlign + 1
		return unsafe.Pointer(unsafe.SliceData(make([]uint64, n))) //nolint:gosec // unsafe is required for raw blocks
	}

	// Allocate size + align so the start can be shifted up to align-1 bytes.
	n := (size+align+WordAlign-1)/WordAlign + 1
	base := unsafe.Pointer(unsafe.SliceData(make([]uint64, n))) //nolint:gosec // unsafe is required for raw blocks
	addr := uintptr(base)
	offset := (align - (addr & (align - 1))) & (align - 1)

	return unsafe.Add(base, offset)
}

// Realloc returns a block of newSize bytes holding the first min(oldSize, newSize)
// bytes of ptr. The new block is always freshly allocated; bytes past oldSize are zero.
func Realloc(ptr unsafe.Pointer, oldSize, newSize, align uintptr) unsafe.Pointer {
	newPtr := AllocAligned(newSize, align)
	if ptr == nil || newPtr == nil {
		return newPtr
	}

	n := min(oldSize, newSize)
	copy(unsafe.Slice((*byte)(newPtr), n), unsafe.Slice((*byte)(ptr), n)) //nolint:gosec // both blocks hold at least n bytes
	return newPtr
}
