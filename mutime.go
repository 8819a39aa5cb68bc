// Package mutime provides a platform-abstracted representation of absolute
// and relative time: an [AbsTime] instant on a monotonically-nondecreasing
// clock, a signed [RelTime] duration between two instants, and arithmetic,
// ordering and unit-conversion operations over them.
//
// The concrete representation is chosen per build target. The default (wide)
// backend represents an instant as a normalized seconds+nanoseconds pair and
// a duration as int64 nanoseconds, suitable for POSIX-like hosts. Building
// with the mutime_tick tag selects the tick backend, which represents an
// instant as a wrapping uint32 counter at 1 ms per tick and a duration as
// int32 ticks, suitable for constrained targets with a hardware counter.
//
// The operation set is identical across backends. All operations are pure
// value arithmetic with no allocation and no shared state; arithmetic that
// exceeds the representation's width wraps per native integer semantics
// rather than reporting an error.
package mutime
