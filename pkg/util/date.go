package util

import "time"

// TimePointer converts a time.Time to a pointer to a time.Time.
func TimePointer(t time.Time) *time.Time {
	return &t
}

// NowUTC returns the current time in UTC.
var NowUTC = func() time.Time {
	return time.Now().UTC()
}

// Float64Pointer converts a float64 to a pointer to a float64.
func Float64Pointer(f float64) *float64 {
	return &f
}
