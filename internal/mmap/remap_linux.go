//go:build linux

package mmap

import (
	"golang.org/x/sys/unix"
)

func osRemap(b []byte, newSize int) ([]byte, error) {
	return unix.Mremap(b, newSize, unix.MREMAP_MAYMOVE)
}
