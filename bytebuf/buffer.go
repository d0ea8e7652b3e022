package bytebuf

import (
	"cmp"
	"fmt"
	"io"
	"unicode/utf8"
	"unsafe"

	"github.com/RuchDB/ruchdb/internal/conv"
	"github.com/RuchDB/ruchdb/memops"
	"github.com/RuchDB/ruchdb/zmem"
)

// unreadable is what String prints for content that is not valid UTF-8.
const unreadable = "<Unreadable Bytes>"

// Buffer is a growable byte string backed by a tagged block.
//
// The zero value is an empty Buffer using zmem.Default(). It allocates on
// first growth.
type Buffer struct {
	len  int
	cap  int
	data unsafe.Pointer
	z    *zmem.Allocator
}

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
	_ io.WriterTo     = (*Buffer)(nil)
	_ fmt.Stringer    = (*Buffer)(nil)
	_ fmt.GoStringer  = (*Buffer)(nil)
)

// New returns an empty Buffer.
func New() *Buffer {
	return NewWith(nil, 0)
}

// WithCapacity returns an empty Buffer with room for at least n bytes.
func WithCapacity(n int) *Buffer {
	return NewWith(nil, n)
}

// NewWith returns an empty Buffer with room for at least n bytes, allocated
// from z. A nil z uses zmem.Default().
func NewWith(z *zmem.Allocator, n int) *Buffer {
	b := &Buffer{z: z}
	data, size := b.allocator().Alloc(uintptr(conv.ClampInt(n)))
	b.data, b.cap = data, sizeToInt(size)
	return b
}

// FromBytes returns a Buffer holding a copy of p.
func FromBytes(p []byte) *Buffer {
	return fromRaw(nil, unsafe.Pointer(unsafe.SliceData(p)), len(p))
}

// FromString returns a Buffer holding a copy of s.
func FromString(s string) *Buffer {
	return fromRaw(nil, unsafe.Pointer(unsafe.StringData(s)), len(s))
}

// FromBuffer returns a Buffer holding a copy of o's content, allocated from
// the same allocator as o.
func FromBuffer(o *Buffer) *Buffer {
	return o.Clone()
}

func fromRaw(z *zmem.Allocator, p unsafe.Pointer, n int) *Buffer {
	b := NewWith(z, n)
	memops.Copy(p, b.data, uintptr(n))
	b.len = n
	return b
}

func sizeToInt(size uintptr) int {
	n, err := conv.UintptrToInt(size)
	if err != nil {
		panic(err)
	}
	return n
}

func (b *Buffer) allocator() *zmem.Allocator {
	if b.z == nil {
		b.z = zmem.Default()
	}
	return b.z
}

// at returns the address of byte i of the block.
func (b *Buffer) at(i int) unsafe.Pointer {
	return unsafe.Add(b.data, i)
}

// offsetOf reports whether p points into the block and at which offset.
// Sources inside the block have to be re-resolved after a resize.
func (b *Buffer) offsetOf(p unsafe.Pointer) (int, bool) {
	if b.data == nil || p == nil {
		return 0, false
	}
	base, q := uintptr(b.data), uintptr(p)
	if q < base || q >= base+uintptr(b.cap) {
		return 0, false
	}
	return int(q - base), true
}

// Len returns the number of bytes in the Buffer.
func (b *Buffer) Len() int { return b.len }

// Cap returns the capacity of the block.
func (b *Buffer) Cap() int { return b.cap }

// Available returns the number of bytes that can be appended without growing.
func (b *Buffer) Available() int { return b.cap - b.len }

// IsEmpty reports whether Len is 0.
func (b *Buffer) IsEmpty() bool { return b.len == 0 }

// IsFull reports whether Available is 0.
func (b *Buffer) IsFull() bool { return b.Available() == 0 }

// Clear empties the Buffer. Capacity is unchanged.
func (b *Buffer) Clear() {
	b.len = 0
}

// Truncate shortens the Buffer to n bytes. It is a no-op if n >= Len.
func (b *Buffer) Truncate(n int) {
	if n < b.len {
		b.len = conv.ClampInt(n)
	}
}

// Reserve makes room for at least extra more bytes. When the Buffer has to
// grow, the new capacity is exactly Len+extra rounded up to the word size.
func (b *Buffer) Reserve(extra int) {
	if b.Available() < extra {
		b.resize(span(b.len, extra))
	}
}

// ShrinkTo lowers the capacity to max(Len, minCap). It never grows.
func (b *Buffer) ShrinkTo(minCap int) {
	if minCap < b.cap {
		b.resize(uintptr(conv.ClampInt(minCap)))
	}
}

// ShrinkToFit lowers the capacity to Len.
func (b *Buffer) ShrinkToFit() {
	if !b.IsFull() {
		b.resize(uintptr(b.len))
	}
}

// span returns off+n for non-negative ints. The sum is taken in uintptr,
// which cannot overflow, so an oversized result reaches the allocator and
// is reported as exhaustion instead of wrapping.
func span(off, n int) uintptr {
	return uintptr(off) + uintptr(n)
}

// resize reallocates the block to hold max(Len, minCap) bytes.
func (b *Buffer) resize(minCap uintptr) {
	target := max(uintptr(b.len), minCap)
	data, size := b.allocator().Realloc(b.data, target)
	b.data, b.cap = data, sizeToInt(size)
}

func (b *Buffer) appendRaw(p unsafe.Pointer, n int) {
	if n == 0 {
		return
	}
	off, self := b.offsetOf(p)
	b.Reserve(n)
	if self {
		p = b.at(off)
	}
	memops.Move(p, b.at(b.len), uintptr(n))
	b.len += n
}

func (b *Buffer) copyRaw(p unsafe.Pointer, n int) {
	b.Clear()
	b.appendRaw(p, n)
}

func (b *Buffer) replaceRaw(offset int, p unsafe.Pointer, n int) {
	offset = conv.ClampInt(offset)
	end := span(offset, n)

	off, self := b.offsetOf(p)
	if uintptr(b.cap) < end {
		b.resize(end)
	}
	if self {
		p = b.at(off)
	}

	if b.len < offset {
		memops.Fill(b.at(b.len), 0, uintptr(offset-b.len))
	}
	memops.Move(p, b.at(offset), uintptr(n))
	// end <= cap now, so it fits in an int.
	b.len = max(b.len, int(end))
}

// AppendBytes appends p.
func (b *Buffer) AppendBytes(p []byte) {
	b.appendRaw(unsafe.Pointer(unsafe.SliceData(p)), len(p))
}

// AppendString appends s.
func (b *Buffer) AppendString(s string) {
	b.appendRaw(unsafe.Pointer(unsafe.StringData(s)), len(s))
}

// AppendBuffer appends the content of o. o may be b itself.
func (b *Buffer) AppendBuffer(o *Buffer) {
	b.appendRaw(o.data, o.len)
}

// AppendPadding appends count copies of value.
func (b *Buffer) AppendPadding(value byte, count int) {
	count = conv.ClampInt(count)
	if count == 0 {
		return
	}
	b.Reserve(count)
	memops.Fill(b.at(b.len), value, uintptr(count))
	b.len += count
}

// Write appends p. It always returns len(p), nil.
func (b *Buffer) Write(p []byte) (int, error) {
	b.AppendBytes(p)
	return len(p), nil
}

// WriteString appends s. It always returns len(s), nil.
func (b *Buffer) WriteString(s string) (int, error) {
	b.AppendString(s)
	return len(s), nil
}

// WriteByte appends c. It always returns nil.
func (b *Buffer) WriteByte(c byte) error {
	b.Reserve(1)
	*(*byte)(b.at(b.len)) = c
	b.len++
	return nil
}

// CopyBytes replaces the content of b with p.
func (b *Buffer) CopyBytes(p []byte) {
	b.copyRaw(unsafe.Pointer(unsafe.SliceData(p)), len(p))
}

// CopyString replaces the content of b with s.
func (b *Buffer) CopyString(s string) {
	b.copyRaw(unsafe.Pointer(unsafe.StringData(s)), len(s))
}

// CopyBuffer replaces the content of b with the content of o.
func (b *Buffer) CopyBuffer(o *Buffer) {
	if o == b {
		return
	}
	b.copyRaw(o.data, o.len)
}

// ReplaceBytes overwrites b starting at offset with p. If offset is past Len,
// the gap is filled with zero bytes. Len becomes max(Len, offset+len(p)).
func (b *Buffer) ReplaceBytes(offset int, p []byte) {
	b.replaceRaw(offset, unsafe.Pointer(unsafe.SliceData(p)), len(p))
}

// ReplaceString is like ReplaceBytes for a string.
func (b *Buffer) ReplaceString(offset int, s string) {
	b.replaceRaw(offset, unsafe.Pointer(unsafe.StringData(s)), len(s))
}

// ReplaceBuffer is like ReplaceBytes for the content of o.
func (b *Buffer) ReplaceBuffer(offset int, o *Buffer) {
	b.replaceRaw(offset, o.data, o.len)
}

// SubRange returns a new Buffer holding a copy of bytes [start, end).
// end is clamped to Len. An empty range yields an empty Buffer.
func (b *Buffer) SubRange(start, end int) *Buffer {
	start = conv.ClampInt(start)
	end = min(b.len, end)
	if start >= end {
		return NewWith(b.allocator(), 0)
	}
	return fromRaw(b.allocator(), b.at(start), end-start)
}

// SubRangeTo returns a copy of bytes [0, end).
func (b *Buffer) SubRangeTo(end int) *Buffer {
	return b.SubRange(0, end)
}

// SubRangeFrom returns a copy of bytes [start, Len).
func (b *Buffer) SubRangeFrom(start int) *Buffer {
	return b.SubRange(start, b.len)
}

// Trim keeps only bytes [start, end), moving them to the front.
// end is clamped to Len. An empty range leaves b unchanged.
func (b *Buffer) Trim(start, end int) {
	start = conv.ClampInt(start)
	end = min(b.len, end)
	if start >= end {
		return
	}
	memops.Move(b.at(start), b.data, uintptr(end-start))
	b.len = end - start
}

// TrimLeft drops the first start bytes.
func (b *Buffer) TrimLeft(start int) {
	b.Trim(start, b.len)
}

// TrimRight drops everything from end on. It is a no-op if end >= Len.
func (b *Buffer) TrimRight(end int) {
	b.Truncate(end)
}

// Bytes returns the content of b. The slice aliases the block and is valid
// only until the next call that may resize b or Release.
func (b *Buffer) Bytes() []byte {
	return unsafe.Slice((*byte)(b.data), b.len)
}

// ToBytes returns a copy of the content of b.
func (b *Buffer) ToBytes() []byte {
	p := make([]byte, b.len)
	copy(p, b.Bytes())
	return p
}

// ToUTF8String returns the content as a string, or "" if it is not valid UTF-8.
func (b *Buffer) ToUTF8String() string {
	p := b.Bytes()
	if !utf8.Valid(p) {
		return ""
	}
	return string(p)
}

// String returns the content as a string, or a fixed placeholder if it is
// not valid UTF-8.
func (b *Buffer) String() string {
	p := b.Bytes()
	if !utf8.Valid(p) {
		return unreadable
	}
	return string(p)
}

// GoString describes the length, capacity, block address and content of b.
func (b *Buffer) GoString() string {
	return fmt.Sprintf("{len: %d, cap: %d, data: <%p>[%s]}", b.len, b.cap, b.data, b.String())
}

// Clone returns a deep copy of b in a fresh block from the same allocator.
func (b *Buffer) Clone() *Buffer {
	return fromRaw(b.allocator(), b.data, b.len)
}

// Equal reports whether b and o hold the same bytes.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.len == o.len && memops.Compare(b.data, o.data, uintptr(b.len)) == 0
}

// Compare compares b and o lexicographically. The result is -1, 0 or +1.
// When one is a prefix of the other, the shorter one sorts first.
func (b *Buffer) Compare(o *Buffer) int {
	n := min(b.len, o.len)
	if c := memops.Compare(b.data, o.data, uintptr(n)); c != 0 {
		return c
	}
	return cmp.Compare(b.len, o.len)
}

// IndexByte returns the index of the first c in b, or -1.
func (b *Buffer) IndexByte(c byte) int {
	i, ok := memops.FindByte(b.data, uintptr(b.len), c)
	if !ok {
		return -1
	}
	return i
}

// WriteTo writes the content of b to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Release frees the block. The Buffer is empty afterwards and may be reused.
// Calling Release more than once is a no-op.
func (b *Buffer) Release() {
	if b.data != nil {
		b.allocator().Free(b.data)
	}
	b.data, b.len, b.cap = nil, 0, 0
}
