// Package align provides size and alignment arithmetic.
//
// # Alignments
//
// Byte alignment is always 1 on every platform. System alignment is the
// alignment of a pointer-sized word: 4 bytes on 32-bit targets and 8 bytes
// on 64-bit targets.
//
// # Rounding
//
//	align.SizeOfAligned(5, 4)   // 8
//	align.SizeOfAligned(4, 4)   // 4
//	align.SizeOfSysAligned(6)   // 8 on 64-bit
//
// The alignment passed to SizeOfAligned must be a power of two. Other values
// are not reported; they silently produce a wrong result.
package align
