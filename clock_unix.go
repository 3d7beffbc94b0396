//go:build linux || darwin || freebsd || netbsd || openbsd

package speedtest

import (
	"time"

	"golang.org/x/sys/unix"
)

func hostClock() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return runtimeClock()
	}
	return time.Duration(ts.Nano())
}
