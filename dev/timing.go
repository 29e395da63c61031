//go:build tinygo

package dev

import (
	"device"
	"time"
)

// Wait calibration constants. The actual nop loop count is
// duration * K / M. Defaults fit the rp2040 at stock clocks; boards
// override them from their config package.
var (
	WaitCalibrationK time.Duration = 80339
	WaitCalibrationM time.Duration = 1000000
)

//go:inline
func Wait(wait time.Duration) {
	for ; wait > 0; wait-- {
		device.Asm(`nop`)
	}
}

// WaitCalibrated busy-waits approximately the requested duration. Used to
// pace the emitter's comparator steps; unlike time.Sleep it never yields
// to the scheduler.
//
//go:inline
func WaitCalibrated(wait time.Duration) {
	Wait((wait * WaitCalibrationK) / WaitCalibrationM)
}
