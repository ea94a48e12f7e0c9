//go:build linux

package main

import (
	"time"

	"golang.org/x/sys/unix"
)

// sleep delays for d using clock_nanosleep where available, which
// holds up noticeably better than time.Sleep at the few-microsecond
// granularity the 1MHz throttle needs. A signal interrupting the
// syscall is retried with the remaining time; on any other error it
// falls back silently to time.Sleep for whatever time remains.
func sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	ts := unix.NsecToTimespec(d.Nanoseconds())
	rem := ts
	for {
		err := unix.ClockNanosleep(unix.CLOCK_MONOTONIC, 0, &rem, &rem)
		if err == nil {
			return
		}
		if err != unix.EINTR {
			time.Sleep(time.Duration(unix.TimespecToNsec(rem)))
			return
		}
	}
}
