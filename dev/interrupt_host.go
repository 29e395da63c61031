//go:build !tinygo

package dev

// Interrupt masking is meaningless off-device; tests drive the handlers
// sequentially, which matches the single-interrupt-at-a-time model of the
// target.

type interruptState uintptr

func disableInterrupts() interruptState {
	return 0
}

func restoreInterrupts(interruptState) {
}
