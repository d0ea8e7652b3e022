// Package alloc provides the raw allocation layer: layouts, host allocators
// and an Allocator implementing allocate / allocate-zeroed / reallocate /
// deallocate over explicit layouts.
//
// # Layouts
//
// Every call takes a Layout, a (size, alignment) pair. The alignment must be
// a power of two and the size must be non-zero. Violations are programmer
// errors: the allocator panics with a *LayoutError. They are never reported
// as returned errors.
//
// # Hosts
//
// An Allocator always delegates to a Host:
//
//   - GoHeap (default): blocks carved from the Go heap, reclaimed by the GC
//     once unreachable. Deallocate only updates accounting.
//   - OffHeap: anonymous mmap blocks outside the GC. Deallocate unmaps.
//     Each block occupies at least one page; suited to large buffers.
//
// Blocks from either host must hold pointer-free data. The Go heap backing
// is scanned as plain words and off-heap memory is not scanned at all.
//
// # Allocation Failure
//
// Exhaustion is fatal. When the host cannot satisfy a request, or the
// configured memory limit would be exceeded, the allocator logs the failure,
// records it in its metrics, runs the process-wide failure hook and
// terminates the process with exit status 2:
//
//	alloc.SetFailureHook(func(l alloc.Layout) {
//	    flushState()
//	})
//
// Without a hook, a diagnostic line is written to stderr before exiting.
//
// # Usage
//
//	a := alloc.New(
//	    alloc.WithHost(alloc.OffHeap()),
//	    alloc.WithMemoryLimit(64<<20),
//	)
//
//	l := alloc.LayoutOfBytes(4096)
//	ptr, size := a.Allocate(l)
//	defer a.Deallocate(ptr, l)
//
// The package-level functions operate on Default(), a Go-heap allocator
// without a limit.
//
// # Thread Safety
//
// Allocator methods are safe for concurrent use on independent blocks.
// A single block must not be reallocated or deallocated concurrently.
package alloc
