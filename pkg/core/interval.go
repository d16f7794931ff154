package core

import "math"

// Interval is the half-open parameter range [Min, Max)
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(minVal, maxVal float64) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// PositiveInterval returns [tMin, +Inf)
func PositiveInterval(tMin float64) Interval {
	return Interval{Min: tMin, Max: math.Inf(1)}
}

// Contains reports whether Min <= t < Max
func (i Interval) Contains(t float64) bool {
	return t >= i.Min && t < i.Max
}

// Empty reports whether no value lies in the interval
func (i Interval) Empty() bool {
	return i.Min >= i.Max
}
