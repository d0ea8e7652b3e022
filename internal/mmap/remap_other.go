//go:build !linux

package mmap

func osRemap(b []byte, newSize int) ([]byte, error) {
	return copyRemap(b, newSize)
}
