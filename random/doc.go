// Package random implements uniform random sampling over numeric ranges and
// slices: bounded integer and float draws, Bernoulli trials, single and
// multi-element sampling without replacement, and in-place shuffling.
//
// Every operation draws from a *Rand. The package-level functions use
// Default(), which is backed by the Go runtime's per-thread generator and is
// safe for concurrent use without locking:
//
//	n, err := random.IntRange(1, 6, true) // a die roll
//	pick, ok := random.SampleOne(nil, []string{"a", "b", "c"})
//
// A *Rand with a reproducible stream can be created with New:
//
//	r, err := random.New(random.WithSeed(42), random.WithAlgorithm(random.PCG))
//
// Only two conditions are treated as errors: an empty numeric range
// (ErrEmptyRange) and a probability outside [0, 1] (ErrOutOfDomain). Sampling
// from an empty slice, or asking for zero or more elements than a slice
// holds, are regular outcomes.
package random
