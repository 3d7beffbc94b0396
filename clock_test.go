package speedtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHostClockMonotonic(t *testing.T) {
	clock := HostClock()
	prev := clock()
	for i := 0; i < 1000; i++ {
		now := clock()
		require.GreaterOrEqual(t, now, prev)
		prev = now
	}

	start := clock()
	time.Sleep(2 * time.Millisecond)
	require.GreaterOrEqual(t, clock()-start, 2*time.Millisecond)
}
