package dev

import "sync/atomic"

// rangeBit marks the high range in the packed output word. The low byte
// carries the duty cycle; packing both into one word keeps the
// interrupt-side write and the background-loop read tear-free without a
// lock.
const rangeBit = 1 << 8

// MeasureFunc receives one completed gate measurement. It runs in the
// gate tick context and must not block.
type MeasureFunc func(total uint32, duty uint8, high bool)

// FrequencyMeter gates a free-running pulse counter over a fixed interval
// and republishes every measurement as an 8-bit duty cycle plus a range
// indicator.
//
// Ownership: Tick runs in the gate tick context, OnOverflow in the
// counter wrap interrupt, and nothing else mutates the accumulator or the
// gate state. Duty, HighRange and Output are safe from the background
// loop.
type FrequencyMeter struct {
	scale Scale
	acc   *PulseAccumulator
	gate  *GateTimer

	out      atomic.Uint32
	callback MeasureFunc
}

func NewFrequencyMeter(scale Scale, counter Counter, callback MeasureFunc) *FrequencyMeter {
	m := &FrequencyMeter{
		scale:    scale,
		callback: callback,
	}
	if counter != nil {
		m.acc = NewPulseAccumulator(counter)
	}
	m.gate = NewGateTimer(scale.GateTicks, m.gateClose)
	return m
}

// Configure validates the scale before the meter is armed.
func (m *FrequencyMeter) Configure() error {
	switch {
	case m.acc == nil:
		return ErrNilCounter
	case m.scale.GateTicks == 0:
		return ErrZeroGate
	case m.scale.TickPeriodUS == 0:
		return ErrZeroTick
	case m.scale.FreqHighMHz == 0 || m.scale.FreqHighMHz%10 != 0:
		return ErrBadCeiling
	case m.scale.Threshold() < dutySteps:
		return ErrScaleTooCoarse
	}
	return nil
}

func (m *FrequencyMeter) SetCallback(f MeasureFunc) {
	m.callback = f
}

// Tick consumes one gate sub-tick; every GateTicks'th call closes the
// gate and publishes a fresh measurement.
func (m *FrequencyMeter) Tick() {
	m.gate.Tick()
}

// OnOverflow records one hardware counter wrap. Wire it to the counter's
// wrap interrupt.
func (m *FrequencyMeter) OnOverflow() {
	m.acc.OnOverflow()
}

// Accumulator exposes the pulse accumulator for hardware frontends that
// deliver wrap events directly.
func (m *FrequencyMeter) Accumulator() *PulseAccumulator {
	return m.acc
}

func (m *FrequencyMeter) Scale() Scale {
	return m.scale
}

// gateClose snapshots the accumulator and publishes the mapped result.
// The snapshot runs with interrupts masked so a wrap event cannot land
// between the counter read and the reset.
func (m *FrequencyMeter) gateClose() {
	mask := disableInterrupts()
	total := m.acc.SnapshotAndClear()
	restoreInterrupts(mask)

	duty, high := m.scale.Map(total)
	word := uint32(duty)
	if high {
		word |= rangeBit
	}
	m.out.Store(word)

	if m.callback != nil {
		m.callback(total, duty, high)
	}
}

// Duty returns the most recently published duty cycle.
func (m *FrequencyMeter) Duty() uint8 {
	return uint8(m.out.Load())
}

// HighRange reports whether the last measurement fell in the high range.
func (m *FrequencyMeter) HighRange() bool {
	return m.out.Load()&rangeBit != 0
}

// Output returns duty and range from a single load.
func (m *FrequencyMeter) Output() (duty uint8, high bool) {
	word := m.out.Load()
	return uint8(word), word&rangeBit != 0
}
