package random

import "math"

// Uniform returns a float drawn uniformly from the closed interval between a
// and b, which may be given in either order. It returns ErrEmptyRange when a
// bound is not finite.
func (r *Rand) Uniform(a, b float64) (float64, error) {
	if !isFinite(a) || !isFinite(b) {
		return 0, &RangeError{Start: a, End: b, Inclusive: true}
	}
	if a == b {
		return a, nil
	}
	f := r.rng.Float64()
	v := a*(1-f) + b*f
	return min(max(v, min(a, b)), max(a, b)), nil
}

// Normal returns a normally distributed float with the given mean and
// standard deviation. A stddev of 0 always yields mean.
func (r *Rand) Normal(mean, stddev float64) (float64, error) {
	if !isFinite(mean) {
		return 0, &DomainError{Name: "mean", Value: mean, Want: "(-inf, inf)"}
	}
	if !isFinite(stddev) || stddev < 0 {
		return 0, &DomainError{Name: "stddev", Value: stddev, Want: "[0, inf)"}
	}
	return mean + stddev*r.rng.NormFloat64(), nil
}

// Exponential returns an exponentially distributed float with the given
// rate, so the mean is 1/rate.
func (r *Rand) Exponential(rate float64) (float64, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, &DomainError{Name: "rate", Value: rate, Want: "(0, inf)"}
	}
	return r.rng.ExpFloat64() / rate, nil
}
