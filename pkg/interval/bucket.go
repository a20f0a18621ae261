package interval

import (
	"time"
)

// CalculateBucketTime calculates the start time of the interval bucket
func (i Interval) CalculateBucketTime(timestamp time.Time) time.Time {
	return timestamp.Truncate(i.Duration)
}

// FirstBucketAtOrAfter returns the earliest bucket start not before timestamp.
func (i Interval) FirstBucketAtOrAfter(timestamp time.Time) time.Time {
	bucket := i.CalculateBucketTime(timestamp)
	if bucket.Before(timestamp) {
		bucket = bucket.Add(i.Duration)
	}
	return bucket
}

// Steps returns how many bucket starts fall in the closed range [start, end].
func (i Interval) Steps(start, end time.Time) int {
	first := i.FirstBucketAtOrAfter(start)
	if end.Before(first) {
		return 0
	}
	return int(end.Sub(first)/i.Duration) + 1
}
