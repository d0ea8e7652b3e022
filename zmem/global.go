package zmem

import "unsafe"

var defaultAllocator = New(nil)

// Default returns the tagged allocator backed by alloc.Default().
func Default() *Allocator {
	return defaultAllocator
}

// Alloc performs a tagged allocation of at least n bytes on Default.
func Alloc(n uintptr) (unsafe.Pointer, uintptr) {
	return defaultAllocator.Alloc(n)
}

// AllocZeroed performs a zeroed tagged allocation of at least n bytes on Default.
func AllocZeroed(n uintptr) (unsafe.Pointer, uintptr) {
	return defaultAllocator.AllocZeroed(n)
}

// Realloc resizes a tagged body allocated on Default.
func Realloc(body unsafe.Pointer, n uintptr) (unsafe.Pointer, uintptr) {
	return defaultAllocator.Realloc(body, n)
}

// Free releases a tagged body allocated on Default.
func Free(body unsafe.Pointer) {
	defaultAllocator.Free(body)
}
