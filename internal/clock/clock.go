package clock

import "time"

// Clock abstracts time lookups so handlers and models can be tested with a
// fixed time instead of the wall clock.
type Clock interface {
	Now() time.Time
	NowUnixMilli() int64
}

// SystemClock reads the real system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}

func (c FixedClock) NowUnixMilli() int64 {
	return c.Time.UnixMilli()
}
