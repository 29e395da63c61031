package dev

// PinWriter is the subset of machine.Pin the emitter needs, split out so
// the comparator can run against a recorded pin in simulation.
type PinWriter interface {
	High()
	Low()
}

// DutySource supplies the most recent duty cycle. Reads must be safe from
// the background loop; FrequencyMeter satisfies this.
type DutySource interface {
	Duty() uint8
}

// Emitter generates the PWM output: a free-running 8-bit counter is
// compared against the published duty cycle on every step, pin high while
// counter <= duty. Duty d therefore yields d+1 high steps out of 256, and
// 255 pins the output high. The counter wraps naturally.
type Emitter struct {
	pin PinWriter
	src DutySource
	ctr uint8
}

func NewEmitter(pin PinWriter, src DutySource) *Emitter {
	return &Emitter{pin: pin, src: src}
}

// Step advances the comparator by one counter cycle. The caller owns the
// pacing; on device this is the background loop, in tests a plain sweep.
func (e *Emitter) Step() {
	if e.ctr > e.src.Duty() {
		e.pin.Low()
	} else {
		e.pin.High()
	}
	e.ctr++
}
