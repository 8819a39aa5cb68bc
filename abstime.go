//go:build !mutime_tick

package mutime

import (
	"math"
	"strconv"
	"time"
)

const nanosPerSecond = 1_000_000_000

const nanosPerMilli = 1_000_000

// AbsTime is an instant on a monotonically-nondecreasing clock, represented
// as whole seconds plus a nanosecond remainder. Nanoseconds is always
// normalized into [0, 1e9); every operation that could push it outside that
// range carries into, or borrows from, Seconds before returning.
//
// AbsTime is an immutable value type. Operations return new values.
type AbsTime struct {
	Seconds     int64
	Nanoseconds int64
}

// RelTime is a signed duration between two [AbsTime] instants, in
// nanoseconds. Positive means forward in time.
//
// Intended as an optimization to store a duration as an int64 (8 bytes)
// with no clock semantics attached, convertible to [time.Duration].
type RelTime int64

// RelMax returns the largest representable [RelTime], about 292 years.
// Useful as an "effectively infinite" duration, e.g. a timeout that
// should never fire.
func RelMax() RelTime {
	return math.MaxInt64
}

// Offset returns base + delta.
//
// The nanosecond remainder of delta is folded into base.Nanoseconds and the
// result renormalized into [0, 1e9): a single carry when the sum reaches one
// second, a single borrow when a negative delta drives it below zero. Go's %
// truncates toward zero, so a negative delta yields a negative remainder;
// the borrow branch is what restores the invariant.
//
// Overflow of the seconds field wraps per int64 arithmetic; it is not
// detected.
func Offset(base AbsTime, delta RelTime) AbsTime {
	secs := base.Seconds + int64(delta)/nanosPerSecond
	nanos := base.Nanoseconds + int64(delta)%nanosPerSecond
	if nanos >= nanosPerSecond {
		secs++
		nanos -= nanosPerSecond
	} else if nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	return AbsTime{Seconds: secs, Nanoseconds: nanos}
}

// Difference returns b − a as a signed duration: positive when b is later
// than a. If the true difference exceeds the range of RelTime the result
// wraps; that is a representational limit, not a detected error.
func Difference(a, b AbsTime) RelTime {
	return RelTime((b.Seconds-a.Seconds)*nanosPerSecond + (b.Nanoseconds - a.Nanoseconds))
}

// IsBefore reports whether a is strictly earlier than b.
// IsBefore(a, b) == IsAfter(b, a); both are false when a == b.
func IsBefore(a, b AbsTime) bool {
	return a.Seconds < b.Seconds ||
		(a.Seconds == b.Seconds && a.Nanoseconds < b.Nanoseconds)
}

// IsAfter reports whether a is strictly later than b.
func IsAfter(a, b AbsTime) bool {
	return a.Seconds > b.Seconds ||
		(a.Seconds == b.Seconds && a.Nanoseconds > b.Nanoseconds)
}

// RelFromSeconds converts a duration in seconds to a [RelTime],
// truncating toward zero at nanosecond precision. Durations large enough
// to lose nanosecond precision in a float64 convert inexactly.
func RelFromSeconds(seconds float64) RelTime {
	return RelTime(seconds * nanosPerSecond)
}

// RelToSeconds converts a [RelTime] to seconds as a float64.
func RelToSeconds(delta RelTime) float64 {
	return float64(delta) / nanosPerSecond
}

// RelFromMillis converts a duration in milliseconds to a [RelTime].
func RelFromMillis(ms int64) RelTime {
	return RelTime(ms * nanosPerMilli)
}

// RelToMillis converts a [RelTime] to whole milliseconds, truncating
// toward zero.
func RelToMillis(delta RelTime) int64 {
	return int64(delta) / nanosPerMilli
}

// various shims to look like time.Time methods

func (t AbsTime) Add(d RelTime) AbsTime {
	return Offset(t, d)
}

func (t AbsTime) Sub(u AbsTime) RelTime {
	return Difference(u, t)
}

func (t AbsTime) Before(u AbsTime) bool {
	return IsBefore(t, u)
}

func (t AbsTime) After(u AbsTime) bool {
	return IsAfter(t, u)
}

func (t AbsTime) String() string {
	return strconv.FormatInt(t.Seconds, 10) + "." +
		pad9(t.Nanoseconds) + "s"
}

func pad9(nanos int64) string {
	s := strconv.FormatInt(nanos, 10)
	for len(s) < 9 {
		s = "0" + s
	}
	return s
}

// FromDuration converts a [time.Duration] to a [RelTime].
func FromDuration(d time.Duration) RelTime {
	return RelTime(d.Nanoseconds())
}

// Duration converts a [RelTime] to a [time.Duration].
func (d RelTime) Duration() time.Duration {
	return time.Duration(d)
}

// Seconds returns the duration in seconds as a float64.
func (d RelTime) Seconds() float64 {
	return RelToSeconds(d)
}

// Milliseconds returns the duration in whole milliseconds.
func (d RelTime) Milliseconds() int64 {
	return RelToMillis(d)
}

func (d RelTime) String() string {
	return time.Duration(d).String()
}
