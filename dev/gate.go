package dev

// GateTimer turns a coarse periodic tick into gate-close events: after
// exactly ticksPerGate calls to Tick it fires the close function and
// rearms for the next interval. Between ticks the remaining count stays
// in [1, ticksPerGate]. Only the tick context touches this state.
type GateTimer struct {
	remaining    uint32
	ticksPerGate uint32
	onClose      func()
}

func NewGateTimer(ticksPerGate uint32, onClose func()) *GateTimer {
	return &GateTimer{
		remaining:    ticksPerGate,
		ticksPerGate: ticksPerGate,
		onClose:      onClose,
	}
}

// Tick consumes one gate sub-tick. Bounded and non-blocking apart from
// whatever the close function does.
func (g *GateTimer) Tick() {
	g.remaining--
	if g.remaining == 0 {
		g.remaining = g.ticksPerGate
		if g.onClose != nil {
			g.onClose()
		}
	}
}

// Remaining reports how many ticks are left in the current gate interval.
func (g *GateTimer) Remaining() uint32 {
	return g.remaining
}
