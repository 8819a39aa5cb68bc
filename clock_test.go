//go:build !mutime_tick

package mutime

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNow_Valid(t *testing.T) {
	t.Parallel()

	now := Now()
	require.Greater(t, now.Seconds, int64(0))
	require.GreaterOrEqual(t, now.Nanoseconds, int64(0))
	require.Less(t, now.Nanoseconds, int64(nanosPerSecond))
}

func TestNow_Monotonic(t *testing.T) {
	t.Parallel()

	// CLOCK_REALTIME can step backwards under NTP adjustment; absent that,
	// successive reads should never run backwards.
	times := make([]AbsTime, 100)
	for i := 0; i < 100; i++ {
		times[i] = Now()
		time.Sleep(time.Microsecond)
	}

	for i := 1; i < len(times); i++ {
		require.False(t, IsAfter(times[i-1], times[i]),
			"read %d (%v) should not precede read %d (%v)",
			i, times[i], i-1, times[i-1])
	}
}

func TestNow_Concurrent(t *testing.T) {
	t.Parallel()

	const concurrency = 100
	const calls = 10

	times := make(chan AbsTime, concurrency*calls)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < calls; j++ {
				times <- Now()
			}
		}()
	}
	wg.Wait()
	close(times)

	// Every read observed from any goroutine is a valid, normalized instant.
	for read := range times {
		require.GreaterOrEqual(t, read.Nanoseconds, int64(0))
		require.Less(t, read.Nanoseconds, int64(nanosPerSecond))
	}
}

func TestNow_TracksElapsed(t *testing.T) {
	t.Parallel()

	t1 := Now()
	time.Sleep(10 * time.Millisecond)
	t2 := Now()

	elapsed := Difference(t1, t2)
	require.GreaterOrEqual(t, elapsed, RelFromMillis(10))
	require.Less(t, elapsed, RelFromSeconds(5), "10ms sleep should not read as 5s")
}
