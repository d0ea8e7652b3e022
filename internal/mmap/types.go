package mmap

import "errors"

var (
	// ErrInvalidSize is returned when the mapping size is invalid (zero or negative).
	ErrInvalidSize = errors.New("mmap: invalid mapping size")
)
