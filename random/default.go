package random

// Bool returns true or false with equal probability using Default().
func Bool() bool {
	return Default().Bool()
}

// BoolWeighted returns true with probability p using Default().
func BoolWeighted(p float64) (bool, error) {
	return Default().BoolWeighted(p)
}

// Int returns an integer from the full int64 domain using Default().
func Int() int64 {
	return Default().Int()
}

// IntRange returns an integer from [start, end), or [start, end] when
// inclusive is set, using Default().
func IntRange(start, end int64, inclusive bool) (int64, error) {
	return Default().IntRange(start, end, inclusive)
}

// Float returns a float from [0.0, 1.0) using Default().
func Float() float64 {
	return Default().Float()
}

// FloatRange returns a float from [start, end) using Default().
func FloatRange(start, end float64) (float64, error) {
	return Default().FloatRange(start, end)
}
