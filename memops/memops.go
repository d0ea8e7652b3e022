package memops

import (
	"bytes"
	"unsafe"
)

func view(p unsafe.Pointer, n uintptr) []byte {
	return unsafe.Slice((*byte)(p), n) //nolint:gosec // caller guarantees p is valid for n bytes
}

// Copy copies n bytes from src to dst. The blocks must not overlap.
func Copy(src, dst unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	copy(view(dst, n), view(src, n))
}

// Move copies n bytes from src to dst. The blocks may overlap.
func Move(src, dst unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	// copy has memmove semantics.
	copy(view(dst, n), view(src, n))
}

// Fill sets n bytes starting at p to value.
func Fill(p unsafe.Pointer, value byte, n uintptr) {
	if n == 0 {
		return
	}
	b := view(p, n)
	if value == 0 {
		clear(b)
		return
	}
	b[0] = value
	for filled := 1; filled < len(b); filled *= 2 {
		copy(b[filled:], b[:filled])
	}
}

// Compare compares n bytes at a and b lexicographically.
// The result is -1, 0 or +1.
func Compare(a, b unsafe.Pointer, n uintptr) int {
	if n == 0 {
		return 0
	}
	return bytes.Compare(view(a, n), view(b, n))
}

// FindByte returns the offset of the first occurrence of value within the n
// bytes starting at p.
func FindByte(p unsafe.Pointer, n uintptr, value byte) (int, bool) {
	if n == 0 {
		return 0, false
	}
	i := bytes.IndexByte(view(p, n), value)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// CopyFor copies count elements of T from src to dst. The blocks must not overlap.
func CopyFor[T any](src, dst *T, count uintptr) {
	var v T
	Copy(unsafe.Pointer(src), unsafe.Pointer(dst), unsafe.Sizeof(v)*count)
}

// MoveFor copies count elements of T from src to dst. The blocks may overlap.
func MoveFor[T any](src, dst *T, count uintptr) {
	var v T
	Move(unsafe.Pointer(src), unsafe.Pointer(dst), unsafe.Sizeof(v)*count)
}
