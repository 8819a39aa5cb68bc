//go:build !mutime_tick && unix

package mutime

import "golang.org/x/sys/unix"

// Now returns the current instant from the host's real-time clock,
// read via clock_gettime(CLOCK_REALTIME).
//
// A failing clock read is a broken host, not a recoverable condition,
// so it panics rather than returning an error.
func Now() AbsTime {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		panic("mutime: clock_gettime: " + err.Error())
	}
	return AbsTime{
		Seconds:     int64(ts.Sec),
		Nanoseconds: int64(ts.Nsec),
	}
}
