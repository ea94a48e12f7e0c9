//go:build !linux

package main

import "time"

// sleep delays for d using the portable stdlib timer on platforms
// without the unix nanosleep family.
func sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
