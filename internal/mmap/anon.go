package mmap

import "os"

// PageSize returns the size of a virtual memory page.
func PageSize() int {
	return os.Getpagesize()
}

// MapAnon creates a zeroed read-write anonymous mapping of size bytes.
func MapAnon(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return osMapAnon(size)
}

// Unmap releases a mapping returned by MapAnon or Remap.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return osUnmap(b)
}

// Remap resizes a mapping to newSize bytes. The returned slice may start at a
// different address; bytes up to min(len(b), newSize) are preserved and any
// growth is zeroed. On error the original mapping is left intact.
func Remap(b []byte, newSize int) ([]byte, error) {
	if newSize <= 0 {
		return nil, ErrInvalidSize
	}
	if len(b) == 0 {
		return MapAnon(newSize)
	}
	if newSize == len(b) {
		return b, nil
	}
	return osRemap(b, newSize)
}

// copyRemap implements Remap for platforms without a native resize.
func copyRemap(b []byte, newSize int) ([]byte, error) {
	data, err := osMapAnon(newSize)
	if err != nil {
		return nil, err
	}
	copy(data, b)
	if err := osUnmap(b); err != nil {
		_ = osUnmap(data)
		return nil, err
	}
	return data, nil
}
