// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between Go's int, which the byte buffer API speaks, and
// uintptr, which the allocation layers speak.
//
// For conversions that are provably safe by domain constraints (e.g., values
// already clamped to be non-negative), use direct type casts instead to avoid
// overhead.
package conv
