package random

import (
	"fmt"
	"math"
)

// Range is an integer interval. End is excluded unless Inclusive is set.
type Range struct {
	Start     int64
	End       int64
	Inclusive bool
}

// Empty reports whether the range contains no values.
func (rg Range) Empty() bool {
	if rg.Inclusive {
		return rg.Start > rg.End
	}
	return rg.Start >= rg.End
}

func (rg Range) String() string {
	if rg.Inclusive {
		return fmt.Sprintf("[%d, %d]", rg.Start, rg.End)
	}
	return fmt.Sprintf("[%d, %d)", rg.Start, rg.End)
}

// closed returns the range as a closed interval [lo, hi].
func (rg Range) closed() (lo, hi int64, err error) {
	if rg.Empty() {
		return 0, 0, &RangeError{Start: rg.Start, End: rg.End, Inclusive: rg.Inclusive}
	}
	if rg.Inclusive {
		return rg.Start, rg.End, nil
	}
	return rg.Start, rg.End - 1, nil
}

// Sample draws a uniformly distributed value from the range.
func (rg Range) Sample(r *Rand) (int64, error) {
	lo, hi, err := rg.closed()
	if err != nil {
		return 0, err
	}
	r = orDefault(r)
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int64(r.src.Uint64()), nil
	}
	// Two's complement wraparound keeps lo+offset inside [lo, hi] even when
	// the offset does not fit in an int64.
	return lo + int64(r.rng.Uint64N(span+1)), nil
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.src.Uint64()>>63 == 1
}

// BoolWeighted returns true with probability p. It returns ErrOutOfDomain if p
// is not in [0, 1].
func (r *Rand) BoolWeighted(p float64) (bool, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return false, &DomainError{Name: "probability", Value: p, Want: "[0, 1]"}
	}
	if p == 1 {
		return true, nil
	}
	// p < 1, so the threshold is below 2^64 and the comparison is exact to
	// within one part in 2^64.
	threshold := uint64(p * (1 << 64))
	return r.src.Uint64() < threshold, nil
}

// Int returns an integer drawn uniformly from the full int64 domain.
func (r *Rand) Int() int64 {
	return int64(r.src.Uint64())
}

// IntRange returns an integer drawn uniformly from [start, end), or from
// [start, end] when inclusive is set. It returns ErrEmptyRange if the range
// holds no values.
func (r *Rand) IntRange(start, end int64, inclusive bool) (int64, error) {
	return Range{Start: start, End: end, Inclusive: inclusive}.Sample(r)
}

// Float returns a float drawn uniformly from [0.0, 1.0).
func (r *Rand) Float() float64 {
	return r.rng.Float64()
}

// FloatRange returns a float drawn uniformly from [start, end). It returns
// ErrEmptyRange if start >= end or if either bound is not finite.
func (r *Rand) FloatRange(start, end float64) (float64, error) {
	if !isFinite(start) || !isFinite(end) || start >= end {
		return 0, &RangeError{Start: start, End: end}
	}
	f := r.rng.Float64()
	var v float64
	if span := end - start; !math.IsInf(span, 0) {
		v = start + span*f
	} else {
		v = start*(1-f) + end*f
	}
	if v >= end {
		v = math.Nextafter(end, math.Inf(-1))
	}
	if v < start {
		v = start
	}
	return v, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
