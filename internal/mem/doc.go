// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides zeroed, power-of-two aligned blocks carved from the Go heap. This
// is the default backing store for the alloc package's host allocator.
package mem
