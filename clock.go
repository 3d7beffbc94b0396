package speedtest

import "time"

// Clock returns a monotonic reading relative to an arbitrary, fixed epoch.
// Only differences between two readings are meaningful.
type Clock func() time.Duration

var runtimeEpoch = time.Now()

// runtimeClock reads the monotonic clock carried by time.Time.
func runtimeClock() time.Duration { return time.Since(runtimeEpoch) }

// HostClock returns the highest resolution clock available on this
// platform.
func HostClock() Clock { return hostClock }
