package alloc

import (
	"fmt"

	"github.com/RuchDB/ruchdb/align"
)

// Layout describes an allocation request: a size in bytes and an alignment.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// NewLayout returns a layout without checking it.
// The layout is validated when it reaches an Allocator.
func NewLayout(size, align uintptr) Layout {
	return Layout{Size: size, Align: align}
}

// LayoutOf returns the layout of T.
func LayoutOf[T any]() Layout {
	return Layout{Size: align.SizeOf[T](), Align: align.AlignOf[T]()}
}

// LayoutOfBytes returns a byte-aligned layout of size bytes.
func LayoutOfBytes(size uintptr) Layout {
	return Layout{Size: size, Align: align.ByteAlign}
}

// Validate reports whether the layout can be allocated.
func (l Layout) Validate() error {
	if !align.IsPowerOfTwo(l.Align) {
		return &LayoutError{Layout: l, Err: ErrBadAlignment}
	}
	if l.Size == 0 {
		return &LayoutError{Layout: l, Err: ErrZeroSize}
	}
	return nil
}

func (l Layout) mustValidate() {
	if err := l.Validate(); err != nil {
		panic(err)
	}
}

func (l Layout) String() string {
	return fmt.Sprintf("layout{size: %d, align: %d}", l.Size, l.Align)
}
