package alloc

import (
	"unsafe"
)

var defaultAllocator = New()

// Default returns the package-level allocator: Go heap, no limit, no
// logging, no metrics.
func Default() *Allocator {
	return defaultAllocator
}

// Allocate allocates size bytes with byte alignment from Default.
func Allocate(size uintptr) (unsafe.Pointer, uintptr) {
	return defaultAllocator.Allocate(LayoutOfBytes(size))
}

// AllocateZeroed allocates size zeroed bytes with byte alignment from Default.
func AllocateZeroed(size uintptr) (unsafe.Pointer, uintptr) {
	return defaultAllocator.AllocateZeroed(LayoutOfBytes(size))
}

// Reallocate resizes a block obtained from Allocate or AllocateZeroed.
func Reallocate(ptr unsafe.Pointer, oldSize, newSize uintptr) (unsafe.Pointer, uintptr) {
	return defaultAllocator.Reallocate(ptr, LayoutOfBytes(oldSize), LayoutOfBytes(newSize))
}

// Deallocate releases a block obtained from Allocate, AllocateZeroed or Reallocate.
func Deallocate(ptr unsafe.Pointer, size uintptr) {
	defaultAllocator.Deallocate(ptr, LayoutOfBytes(size))
}

// AllocateFor allocates storage for one T from Default. T must not contain
// Go pointers.
func AllocateFor[T any]() (*T, uintptr) {
	ptr, size := defaultAllocator.Allocate(LayoutOf[T]())
	return (*T)(ptr), size
}

// AllocateZeroedFor allocates zeroed storage for one T from Default. T must
// not contain Go pointers.
func AllocateZeroedFor[T any]() (*T, uintptr) {
	ptr, size := defaultAllocator.AllocateZeroed(LayoutOf[T]())
	return (*T)(ptr), size
}

// DeallocateFor releases storage obtained from AllocateFor or AllocateZeroedFor.
func DeallocateFor[T any](ptr *T) {
	defaultAllocator.Deallocate(unsafe.Pointer(ptr), LayoutOf[T]())
}
