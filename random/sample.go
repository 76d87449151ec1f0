package random

import "slices"

// Below this ratio of n to k, SampleMany selects with Floyd's algorithm
// instead of copying the whole input.
const floydRatio = 4

// SampleOne returns an element of s chosen with probability 1/len(s). The
// boolean is false when s is empty. A nil r uses Default().
func SampleOne[T any](r *Rand, s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	r = orDefault(r)
	return s[r.IntN(len(s))], true
}

// SampleMany returns k elements of s chosen without replacement, in random
// order. Every subset of size k is equally likely and so is every ordering of
// it. When k <= 0 or s is empty the result is empty; when k >= len(s) the
// result is a shuffled copy of s. The result never shares memory with s. A
// nil r uses Default().
func SampleMany[T any](r *Rand, s []T, k int) []T {
	n := len(s)
	if n == 0 || k <= 0 {
		return []T{}
	}
	r = orDefault(r)
	if k >= n {
		out := slices.Clone(s)
		Shuffle(r, out)
		return out
	}
	if k*floydRatio < n {
		indices := floydIndices(r, n, k)
		out := make([]T, k)
		for i, idx := range indices {
			out[i] = s[idx]
		}
		return out
	}
	out := slices.Clone(s)
	for i := range k {
		j := i + r.IntN(n-i)
		out[i], out[j] = out[j], out[i]
	}
	return slices.Clip(out[:k])
}

// floydIndices selects k distinct indices in [0, n) using Floyd's
// algorithm, then shuffles them. Floyd's selection is uniform over subsets but
// its output order is not, so the shuffle is required.
func floydIndices(r *Rand, n, k int) []int {
	chosen := make(map[int]struct{}, k)
	indices := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := r.IntN(j + 1)
		if _, ok := chosen[t]; ok {
			t = j
		}
		chosen[t] = struct{}{}
		indices = append(indices, t)
	}
	Shuffle(r, indices)
	return indices
}

// Shuffle reorders s in place so that every permutation is equally likely.
// A nil r uses Default().
func Shuffle[T any](r *Rand, s []T) {
	if len(s) < 2 {
		return
	}
	r = orDefault(r)
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
