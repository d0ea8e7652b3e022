// Package zmem implements size-tagged allocation.
//
// Every block reserves one pointer-sized header word in front of the body.
// The header holds the body size, so the capacity of a block can be
// recovered later from the body pointer alone:
//
//	raw                 body (returned)
//	 |                   |
//	 v                   v
//	 +-------------------+---------------------------------+
//	 | header: body size | body: round_up(n, word) bytes   |
//	 +-------------------+---------------------------------+
//
// Body sizes are rounded up to the word size, so a request for 6 bytes
// reports 8 on 64-bit targets. A request for 0 bytes still yields a valid,
// non-nil pointer because the header always occupies space.
//
// The header layout never leaves this package: callers only ever see body
// pointers and sizes.
package zmem
