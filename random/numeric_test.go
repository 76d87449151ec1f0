package random

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, seed uint64) *Rand {
	t.Helper()
	r, err := New(WithSeed(seed))
	require.Nil(t, err)
	return r
}

func TestIntRangeExclusiveCoversBounds(t *testing.T) {
	r := seeded(t, 1)
	seen := map[int64]int{}
	for range 2000 {
		v, err := r.IntRange(-3, 4, false)
		require.Nil(t, err)
		require.GreaterOrEqual(t, v, int64(-3))
		require.Less(t, v, int64(4))
		seen[v]++
	}
	require.Len(t, seen, 7)
	require.Zero(t, seen[4])
}

func TestIntRangeInclusiveCoversBounds(t *testing.T) {
	r := seeded(t, 2)
	seen := map[int64]int{}
	for range 2000 {
		v, err := r.IntRange(5, 10, true)
		require.Nil(t, err)
		require.GreaterOrEqual(t, v, int64(5))
		require.LessOrEqual(t, v, int64(10))
		seen[v]++
	}
	require.Len(t, seen, 6)
	require.Positive(t, seen[10])
	require.Positive(t, seen[5])
}

func TestIntRangeSingleValue(t *testing.T) {
	r := seeded(t, 3)
	for range 100 {
		v, err := r.IntRange(7, 7, true)
		require.Nil(t, err)
		require.Equal(t, int64(7), v)
	}
	v, err := r.IntRange(7, 8, false)
	require.Nil(t, err)
	require.Equal(t, int64(7), v)
}

func TestIntRangeEmpty(t *testing.T) {
	r := seeded(t, 4)
	tests := []struct {
		start, end int64
		inclusive  bool
	}{
		{5, 5, false},
		{6, 5, false},
		{6, 5, true},
		{math.MaxInt64, math.MinInt64, true},
	}
	for _, tc := range tests {
		_, err := r.IntRange(tc.start, tc.end, tc.inclusive)
		require.ErrorIs(t, err, ErrEmptyRange)
		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
		require.Equal(t, tc.start, rangeErr.Start)
		require.Equal(t, tc.end, rangeErr.End)
	}
}

func TestIntRangeFullWidth(t *testing.T) {
	r := seeded(t, 5)
	var negative, positive bool
	for range 200 {
		v, err := r.IntRange(math.MinInt64, math.MaxInt64, true)
		require.Nil(t, err)
		if v < 0 {
			negative = true
		} else {
			positive = true
		}
	}
	require.True(t, negative)
	require.True(t, positive)

	for range 200 {
		v, err := r.IntRange(math.MinInt64, math.MaxInt64, false)
		require.Nil(t, err)
		require.Less(t, v, int64(math.MaxInt64))
	}
}

func TestRangeString(t *testing.T) {
	require.Equal(t, "[1, 5)", Range{Start: 1, End: 5}.String())
	require.Equal(t, "[1, 5]", Range{Start: 1, End: 5, Inclusive: true}.String())
	require.True(t, Range{Start: 1, End: 1}.Empty())
	require.False(t, Range{Start: 1, End: 1, Inclusive: true}.Empty())
}

func TestRangeSampleNilRand(t *testing.T) {
	v, err := Range{Start: 10, End: 12}.Sample(nil)
	require.Nil(t, err)
	require.True(t, v == 10 || v == 11)
}

func TestBoolWeightedExtremes(t *testing.T) {
	r := seeded(t, 6)
	for range 1000 {
		v, err := r.BoolWeighted(0.0)
		require.Nil(t, err)
		require.False(t, v)

		v, err = r.BoolWeighted(1.0)
		require.Nil(t, err)
		require.True(t, v)
	}
}

func TestBoolWeightedOutOfDomain(t *testing.T) {
	r := seeded(t, 7)
	for _, p := range []float64{-0.1, 1.0000001, 2, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := r.BoolWeighted(p)
		require.ErrorIs(t, err, ErrOutOfDomain)
		var domainErr *DomainError
		require.True(t, errors.As(err, &domainErr))
		require.Equal(t, "probability", domainErr.Name)
	}
}

func TestBoolWeightedFrequency(t *testing.T) {
	r := seeded(t, 8)
	hits := 0
	const trials = 100000
	for range trials {
		v, err := r.BoolWeighted(0.25)
		require.Nil(t, err)
		if v {
			hits++
		}
	}
	// The standard deviation is ~137, so this is a > 7 sigma band.
	require.InDelta(t, trials/4, hits, 1000)
}

func TestBool(t *testing.T) {
	r := seeded(t, 9)
	var trues, falses int
	for range 1000 {
		if r.Bool() {
			trues++
		} else {
			falses++
		}
	}
	require.Positive(t, trues)
	require.Positive(t, falses)
}

func TestIntAndFloatDiffer(t *testing.T) {
	r := seeded(t, 10)
	require.NotEqual(t, r.Int(), r.Int())
	require.NotEqual(t, r.Float(), r.Float())
}

func TestFloat(t *testing.T) {
	r := seeded(t, 11)
	for range 1000 {
		f := r.Float()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestFloatRange(t *testing.T) {
	r := seeded(t, 12)
	for range 1000 {
		f, err := r.FloatRange(-2.5, 7.5)
		require.Nil(t, err)
		require.GreaterOrEqual(t, f, -2.5)
		require.Less(t, f, 7.5)
	}
}

func TestFloatRangeTiny(t *testing.T) {
	r := seeded(t, 13)
	end := math.Nextafter(1.0, 2.0)
	for range 100 {
		f, err := r.FloatRange(1.0, end)
		require.Nil(t, err)
		require.Equal(t, 1.0, f)
	}
}

func TestFloatRangeHuge(t *testing.T) {
	r := seeded(t, 14)
	for range 100 {
		f, err := r.FloatRange(-math.MaxFloat64, math.MaxFloat64)
		require.Nil(t, err)
		require.False(t, math.IsInf(f, 0))
		require.False(t, math.IsNaN(f))
		require.Less(t, f, math.MaxFloat64)
	}
}

func TestFloatRangeEmpty(t *testing.T) {
	r := seeded(t, 15)
	tests := [][2]float64{
		{1, 1},
		{2, 1},
		{math.NaN(), 1},
		{0, math.NaN()},
		{0, math.Inf(1)},
		{math.Inf(-1), 0},
	}
	for _, tc := range tests {
		_, err := r.FloatRange(tc[0], tc[1])
		require.ErrorIs(t, err, ErrEmptyRange)
	}
}

func TestRangeErrorMessage(t *testing.T) {
	err := &RangeError{Start: int64(3), End: int64(1), Inclusive: true}
	require.Equal(t, "empty range: [3, 1]", err.Error())
	err = &RangeError{Start: 1.5, End: 1.5}
	require.Equal(t, "empty range: [1.5, 1.5)", err.Error())
}

func TestDomainErrorMessage(t *testing.T) {
	err := &DomainError{Name: "probability", Value: 1.5, Want: "[0, 1]"}
	require.Equal(t, "out of domain: probability must be in [0, 1] (got 1.5)", err.Error())
}

func TestPackageLevelFunctions(t *testing.T) {
	_ = Bool()
	_ = Int()

	f := Float()
	require.GreaterOrEqual(t, f, 0.0)
	require.Less(t, f, 1.0)

	v, err := IntRange(1, 6, true)
	require.Nil(t, err)
	require.GreaterOrEqual(t, v, int64(1))
	require.LessOrEqual(t, v, int64(6))

	_, err = IntRange(1, 1, false)
	require.ErrorIs(t, err, ErrEmptyRange)

	g, err := FloatRange(10, 20)
	require.Nil(t, err)
	require.GreaterOrEqual(t, g, 10.0)
	require.Less(t, g, 20.0)

	_, err = FloatRange(1, 1)
	require.ErrorIs(t, err, ErrEmptyRange)

	b, err := BoolWeighted(1)
	require.Nil(t, err)
	require.True(t, b)

	_, err = BoolWeighted(-1)
	require.ErrorIs(t, err, ErrOutOfDomain)
}
