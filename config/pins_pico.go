//go:build rp2040

package config

import "machine"

var (
	// FreqIn must sit on a PWM B channel (odd GPIO on the rp2040); the
	// slice counts its rising edges. GP5 belongs to slice 2.
	FreqIn = machine.GP5

	PwmOut   = machine.GP0
	RangeLED = machine.GP1
)

const (
	// Gate geometry: 200 ticks of 2048us = 409.6ms per measurement
	// window. Calibration constants; see dev.Scale.
	GateTicks    = 200
	TickPeriodUS = 2048

	// High range ceiling in MHz. The low range ceiling is a tenth of it.
	FreqHighMHz = 20

	WaitCalibrationK = 80339
	WaitCalibrationM = 1000000
)
