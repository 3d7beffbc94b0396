//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package speedtest

import "time"

// hostClock uses the runtime's monotonic clock. On windows this is the
// only monotonic source, since x/sys/windows exposes the system time but
// not the performance counter.
func hostClock() time.Duration { return runtimeClock() }
