//go:build mutime_tick

package mutime

import (
	"math"
	"strconv"
	"time"
)

const ticksPerSecond = 1000

const nanosPerTick = 1_000_000

// AbsTime is an instant on a monotonically-nondecreasing clock, represented
// as a raw counter at 1 ms per tick. The counter wraps at 2^32, about 49.7
// days; comparisons and differences are only meaningful between instants
// less than half a wraparound apart.
//
// AbsTime is an immutable value type. Operations return new values.
type AbsTime uint32

// RelTime is a signed duration between two [AbsTime] instants, in ticks.
// Positive means forward in time.
type RelTime int32

// epoch anchors the default tick source at process start.
var epoch = time.Now()

func defaultTicks() uint32 {
	return uint32(time.Since(epoch).Milliseconds())
}

var readTicks = defaultTicks

// SetTickSource replaces the tick-read primitive, e.g. with a hardware
// counter's register read. The source must count at 1 ms per tick and be
// safe for concurrent use. Call once at program init, before Now.
func SetTickSource(read func() uint32) {
	readTicks = read
}

// Now returns the current instant from the tick source.
func Now() AbsTime {
	return AbsTime(readTicks())
}

// RelMax returns the largest representable [RelTime], about 24.8 days.
// Useful as an "effectively infinite" duration, e.g. a timeout that
// should never fire.
func RelMax() RelTime {
	return math.MaxInt32
}

// Offset returns base + delta, wrapping at the counter width. The
// representation is a single field, so no carry logic applies.
func Offset(base AbsTime, delta RelTime) AbsTime {
	return base + AbsTime(delta)
}

// Difference returns b − a in ticks: positive when b is later than a,
// assuming the instants are less than half a wraparound apart. The caller
// owns that assumption; a larger true separation is indistinguishable
// from its complement.
func Difference(a, b AbsTime) RelTime {
	return RelTime(b - a)
}

// IsBefore reports whether a is strictly earlier than b, interpreting the
// counter distance as signed so that ordering survives wraparound within
// half the counter range. IsBefore(a, b) == IsAfter(b, a); both are false
// when a == b.
func IsBefore(a, b AbsTime) bool {
	return int32(b-a) > 0
}

// IsAfter reports whether a is strictly later than b.
func IsAfter(a, b AbsTime) bool {
	return int32(b-a) < 0
}

// RelFromSeconds converts a duration in seconds to a [RelTime],
// truncating toward zero at tick precision.
func RelFromSeconds(seconds float64) RelTime {
	return RelTime(seconds * ticksPerSecond)
}

// RelToSeconds converts a [RelTime] to seconds as a float64.
func RelToSeconds(delta RelTime) float64 {
	return float64(delta) / ticksPerSecond
}

// RelFromMillis converts a duration in milliseconds to a [RelTime].
// One tick is one millisecond.
func RelFromMillis(ms int64) RelTime {
	return RelTime(ms)
}

// RelToMillis converts a [RelTime] to milliseconds.
func RelToMillis(delta RelTime) int64 {
	return int64(delta)
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
	return strconv.FormatUint(uint64(t), 10) + "t"
}

// FromDuration converts a [time.Duration] to a [RelTime], truncating
// toward zero at tick precision.
func FromDuration(d time.Duration) RelTime {
	return RelTime(d.Nanoseconds() / nanosPerTick)
}

// Duration converts a [RelTime] to a [time.Duration].
func (d RelTime) Duration() time.Duration {
	return time.Duration(d) * nanosPerTick
}

// Seconds returns the duration in seconds as a float64.
func (d RelTime) Seconds() float64 {
	return RelToSeconds(d)
}

// Milliseconds returns the duration in milliseconds.
func (d RelTime) Milliseconds() int64 {
	return RelToMillis(d)
}

func (d RelTime) String() string {
	return (time.Duration(d) * nanosPerTick).String()
}
