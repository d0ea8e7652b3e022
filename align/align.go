package align

import "unsafe"

const (
	// ByteAlign is the alignment of a single byte.
	ByteAlign uintptr = 1

	// SysAlign is the alignment of a pointer-sized word.
	SysAlign = unsafe.Alignof(uintptr(0))

	// WordSize is the size of a pointer-sized word.
	WordSize = unsafe.Sizeof(uintptr(0))
)

// SizeOf returns the size of T in bytes.
func SizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

// AlignOf returns the minimum alignment of T in bytes.
func AlignOf[T any]() uintptr {
	var v T
	return unsafe.Alignof(v)
}

// SizeOfAligned rounds size up to the nearest multiple of align.
// align must be a power of two.
func SizeOfAligned(size, align uintptr) uintptr {
	return (size + align - 1) &^ (align - 1)
}

// SizeOfSysAligned rounds size up to the nearest multiple of SysAlign.
func SizeOfSysAligned(size uintptr) uintptr {
	return SizeOfAligned(size, SysAlign)
}

// IsPowerOfTwo reports whether x is a power of two.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}
