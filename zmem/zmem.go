package zmem

import (
	"unsafe"

	"github.com/RuchDB/ruchdb/align"
	"github.com/RuchDB/ruchdb/alloc"
)

// HeaderSize is the width of the hidden size header.
const HeaderSize = align.SysAlign

// Allocator performs tagged allocation on top of an alloc.Allocator.
type Allocator struct {
	raw *alloc.Allocator
}

// New returns a tagged allocator delegating to raw.
// A nil raw uses alloc.Default().
func New(raw *alloc.Allocator) *Allocator {
	if raw == nil {
		raw = alloc.Default()
	}
	return &Allocator{raw: raw}
}

// Raw returns the underlying allocator.
func (z *Allocator) Raw() *alloc.Allocator {
	return z.raw
}

// maxBody is the largest request whose rounded body plus header still fits
// in a uintptr.
const maxBody = ^uintptr(0) - HeaderSize - (align.SysAlign - 1)

// bodySize rounds n up to the word size. A request too large to represent
// is reported to the raw allocator as exhaustion.
func (z *Allocator) bodySize(n uintptr) uintptr {
	if n > maxBody {
		z.raw.Fail(alloc.NewLayout(n, align.SysAlign))
	}
	return align.SizeOfSysAligned(n)
}

func blockLayout(bodySize uintptr) alloc.Layout {
	return alloc.NewLayout(HeaderSize+bodySize, align.SysAlign)
}

func header(body unsafe.Pointer) *uintptr {
	return (*uintptr)(unsafe.Add(body, -int(HeaderSize)))
}

// tag writes the body size into the header at raw and returns the body pointer.
func tag(raw unsafe.Pointer, bodySize uintptr) unsafe.Pointer {
	*(*uintptr)(raw) = bodySize
	return unsafe.Add(raw, HeaderSize)
}

// Alloc returns a body of at least n bytes and its actual size.
// The body contents are unspecified.
func (z *Allocator) Alloc(n uintptr) (unsafe.Pointer, uintptr) {
	bodySize := z.bodySize(n)
	raw, _ := z.raw.Allocate(blockLayout(bodySize))
	return tag(raw, bodySize), bodySize
}

// AllocZeroed is like Alloc, but the body is zero-initialized.
func (z *Allocator) AllocZeroed(n uintptr) (unsafe.Pointer, uintptr) {
	bodySize := z.bodySize(n)
	raw, _ := z.raw.AllocateZeroed(blockLayout(bodySize))
	return tag(raw, bodySize), bodySize
}

// Free releases a body returned by Alloc, AllocZeroed or Realloc.
// A nil body is a no-op.
func (z *Allocator) Free(body unsafe.Pointer) {
	if body == nil {
		return
	}
	hdr := header(body)
	z.raw.Deallocate(unsafe.Pointer(hdr), blockLayout(*hdr))
}

// Realloc resizes a body to at least n bytes, preserving its contents up to
// the smaller of the two sizes. The body may move; body must not be used
// afterwards. A nil body behaves as Alloc(n).
func (z *Allocator) Realloc(body unsafe.Pointer, n uintptr) (unsafe.Pointer, uintptr) {
	if body == nil {
		return z.Alloc(n)
	}

	hdr := header(body)
	oldSize := *hdr
	newSize := z.bodySize(n)

	raw, _ := z.raw.Reallocate(unsafe.Pointer(hdr), blockLayout(oldSize), blockLayout(newSize))
	return tag(raw, newSize), newSize
}

// SizeOf returns the body size recorded in the header. A nil body has size 0.
func SizeOf(body unsafe.Pointer) uintptr {
	if body == nil {
		return 0
	}
	return *header(body)
}

// SizeOf returns the body size recorded in the header. A nil body has size 0.
func (z *Allocator) SizeOf(body unsafe.Pointer) uintptr {
	return SizeOf(body)
}
