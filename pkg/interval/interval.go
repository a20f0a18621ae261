package interval

import (
	"fmt"
	"time"
)

// Interval represents the spacing between consecutive records of a series.
type Interval struct {
	Name     string
	Duration time.Duration
	// Granularity is the bucketing hint handed to time-series collections.
	Granularity string
}

// Supported intervals configuration
var (
	Interval1s = Interval{Name: "1s", Duration: time.Second, Granularity: "seconds"}
	Interval1m = Interval{Name: "1m", Duration: time.Minute, Granularity: "minutes"}
	Interval1h = Interval{Name: "1h", Duration: time.Hour, Granularity: "hours"}
)

// All supported intervals
var AllIntervals = []Interval{Interval1s, Interval1m, Interval1h}

// Interval registry for lookup
var intervalRegistry = make(map[string]Interval)

func init() {
	for _, interval := range AllIntervals {
		intervalRegistry[interval.Name] = interval
	}
}

// GetInterval returns an interval by name
func GetInterval(name string) (Interval, error) {
	interval, exists := intervalRegistry[name]
	if !exists {
		return Interval{}, fmt.Errorf("unsupported interval %q, supported: %v", name, GetAllIntervalNames())
	}
	return interval, nil
}

// IsValidInterval checks if interval name is supported
func IsValidInterval(name string) bool {
	_, exists := intervalRegistry[name]
	return exists
}

// GetAllIntervalNames returns all supported interval names
func GetAllIntervalNames() []string {
	names := make([]string, 0, len(AllIntervals))
	for _, interval := range AllIntervals {
		names = append(names, interval.Name)
	}
	return names
}
