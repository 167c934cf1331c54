package timex

import "time"

// Ms converts a millisecond count to a Duration.
func Ms[T ~int | ~int32 | ~int64 | ~uint32](n T) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// ToMs truncates d to whole milliseconds.
func ToMs(d time.Duration) int64 { return int64(d / time.Millisecond) }
