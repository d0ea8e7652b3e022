// Package memops provides raw byte-block primitives over unsafe pointers.
//
// These are the block operations the tagged allocator and byte buffer are
// built on:
//
//   - Copy: non-overlapping block copy
//   - Move: overlap-tolerant block copy
//   - Fill: set every byte of a block to a value
//   - Compare: lexicographic block comparison
//   - FindByte: offset of the first occurrence of a byte
//
// Callers are responsible for pointer validity. A zero count is always a
// no-op, and nil pointers are accepted only with a zero count.
package memops
