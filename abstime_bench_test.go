//go:build !mutime_tick

package mutime

import (
	"testing"
)

var benchAbs AbsTime

var benchRel RelTime

var benchBool bool

func BenchmarkOffset(b *testing.B) {
	base := AbsTime{Seconds: 1000, Nanoseconds: 500_000_000}
	delta := RelTime(1_500_000_000)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchAbs = Offset(base, delta)
	}
}

func BenchmarkOffset_Borrow(b *testing.B) {
	base := AbsTime{Seconds: 1000, Nanoseconds: 200_000_000}
	delta := RelTime(-300_000_000)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchAbs = Offset(base, delta)
	}
}

func BenchmarkDifference(b *testing.B) {
	x := AbsTime{Seconds: 1000, Nanoseconds: 0}
	y := AbsTime{Seconds: 1002, Nanoseconds: 500_000_000}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchRel = Difference(x, y)
	}
}

func BenchmarkIsBefore(b *testing.B) {
	x := AbsTime{Seconds: 1000, Nanoseconds: 0}
	y := AbsTime{Seconds: 1000, Nanoseconds: 1}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchBool = IsBefore(x, y)
	}
}

func BenchmarkNow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchAbs = Now()
	}
}
