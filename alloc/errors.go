package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroSize indicates a layout with a zero size.
	ErrZeroSize = errors.New("alloc: zero-size layout")

	// ErrBadAlignment indicates an alignment that is not a power of two or
	// that the host cannot honor.
	ErrBadAlignment = errors.New("alloc: alignment must be a power of two")

	// ErrAlignMismatch indicates a reallocation whose old and new layouts
	// have different alignments.
	ErrAlignMismatch = errors.New("alloc: reallocation must keep the alignment")

	// ErrOutOfMemory indicates the host could not satisfy a request.
	ErrOutOfMemory = errors.New("alloc: out of memory")
)

// LayoutError describes a precondition violation on a layout.
// It is used as a panic value, never returned.
type LayoutError struct {
	Layout Layout
	Err    error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%v: %v", e.Err, e.Layout)
}

func (e *LayoutError) Unwrap() error { return e.Err }
