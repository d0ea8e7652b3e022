// Package bytebuf provides Buffer, a growable byte string stored in a
// size-tagged memory block.
//
// A Buffer tracks its length and capacity separately from the block it owns.
// Growth is exact: Reserve(n) grows the block to precisely the bytes needed,
// rounded up to the word size, and never doubles. Callers who append in a
// loop should Reserve the total up front.
//
// Out-of-range arguments are clamped rather than reported. Negative indices
// and counts are treated as 0, ends past Len are treated as Len, and an empty
// range makes Trim a no-op and SubRange return an empty Buffer.
//
// A Buffer must be released exactly once its owner is done with it:
//
//	b := bytebuf.FromString("Hello")
//	defer b.Release()
//
//	b.AppendString(" world")
//	fmt.Println(b) // Hello world
//
// The slice returned by Bytes borrows the block. It is invalidated by any
// call that may grow or shrink the Buffer, and by Release. Passing such a
// slice back into the same Buffer (for example b.AppendBytes(b.Bytes())) is
// supported.
//
// A Buffer is not safe for concurrent use. Independent Buffers may be used
// from different goroutines.
package bytebuf
