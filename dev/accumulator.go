package dev

// Counter is the free-running 16-bit hardware counter clocked by the
// input signal's rising edges. Count and Reset complete in bounded time.
type Counter interface {
	Count() uint16
	Reset()
}

// CounterSpan is the quantum added to the overflow extension each time
// the 16-bit hardware counter wraps.
const CounterSpan = 1 << 16

// PulseAccumulator keeps an exact edge count since the last gate close
// even though the hardware counter wraps at 2^16. Both mutators run in
// interrupt context; the handlers are mutually non-reentrant, so the only
// critical section needed is the gate-close snapshot, owned by
// FrequencyMeter.
type PulseAccumulator struct {
	counter  Counter
	overflow uint32
}

func NewPulseAccumulator(c Counter) *PulseAccumulator {
	return &PulseAccumulator{counter: c}
}

// OnOverflow extends the count by one full counter span. It must run once
// per hardware wrap; a missed wrap silently undercounts the interval by
// 65536 pulses.
func (a *PulseAccumulator) OnOverflow() {
	a.overflow += CounterSpan
}

// SnapshotAndClear returns the pulse total for the closing gate interval
// and zeroes both the extension and the hardware counter. The read/reset
// pair is one observation: an edge landing between them is lost, bounded
// at one edge per gate. That error is inherent to counter-based
// measurement.
func (a *PulseAccumulator) SnapshotAndClear() uint32 {
	total := a.overflow + uint32(a.counter.Count())
	a.counter.Reset()
	a.overflow = 0
	return total
}
