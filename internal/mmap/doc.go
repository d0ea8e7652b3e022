// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// Anonymous mappings hand out zeroed, page-aligned, read-write memory that
// lives outside the Go garbage collector's control. The alloc package uses
// them as the backing store of its off-heap host allocator.
//
// # Usage
//
//	b, err := mmap.MapAnon(4096)
//	if err != nil { ... }
//
//	b, err = mmap.Remap(b, 8192) // may relocate
//	if err != nil { ... }
//
//	err = mmap.Unmap(b)
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Linux: mmap(2), with mremap(2) for in-place growth
//   - Other Unix (macOS, BSD): mmap(2); Remap maps, copies and unmaps
//   - Windows: VirtualAlloc/VirtualFree; Remap allocates, copies and frees
//
// # Ownership
//
// Unmap and Remap must be given the exact slice (same start, same length)
// returned by MapAnon or Remap. Any other slice is rejected on Unix and is
// undefined behavior on Windows. After Unmap or a successful Remap, the old
// slice must not be accessed.
package mmap
