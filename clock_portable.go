//go:build !mutime_tick && !unix

package mutime

import "time"

// Now returns the current instant from the host's real-time clock.
func Now() AbsTime {
	t := time.Now()
	return AbsTime{
		Seconds:     t.Unix(),
		Nanoseconds: int64(t.Nanosecond()),
	}
}
