// Package testutil provides testing utilities for topset.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded random source for reproducible input streams and a brute-force
// selection oracle for verifying heap results against ground truth.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Ints(10000, 1000) // 10k values in [0, 1000)
//
// # Exact Selection (Ground Truth)
//
//	want := testutil.ExactBestN(xs, 5, func(a, b int) bool { return a > b })
package testutil
