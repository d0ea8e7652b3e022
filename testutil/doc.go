// Package testutil provides testing utilities for ruchdb.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	p := rng.Bytes(64)         // arbitrary bytes
//	s := rng.ASCII(16)         // printable ASCII
//	ops := rng.Intn(10)
//
// # Heap and Process Checks
//
//	testutil.ChurnHeap(200_000)                 // GC while recycling small blocks
//	code, stderr := testutil.ExpectExit(t, fn)  // fn runs in a child process
package testutil
