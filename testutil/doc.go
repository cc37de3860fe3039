// Package testutil provides testing utilities for colgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe RNG plus helpers for generating
// random column payloads and well-formed run lists.
//
// # Random Run Lists
//
//	rng := testutil.NewRNG(seed)
//	list, rows := rng.RandomRuns(sourceRows, 64, 100)
//
// # Random Payloads
//
//	values := rng.RandomInt64s(1000)
//	flags := rng.RandomBools(1000)
package testutil
