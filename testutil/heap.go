package testutil

import "runtime"

// ChurnSentinel is the value ChurnHeap writes into every block it allocates.
const ChurnSentinel uint64 = 0xdeadbeefdeadbeef

// ChurnHeap forces garbage collections while allocating n small
// pointer-free blocks filled with ChurnSentinel. Memory the collector
// wrongly considers unreachable is likely to be reused and overwritten.
func ChurnHeap(n int) {
	runtime.GC()

	keep := make([][]uint64, 1024)
	for i := range n {
		keep[i%len(keep)] = []uint64{ChurnSentinel}
		if i%(n/8+1) == 0 {
			runtime.GC()
		}
	}

	runtime.GC()
	runtime.KeepAlive(keep)
}
