package dev

// DutyMax is the largest representable duty cycle value.
const DutyMax = 255

// dutySteps is the number of output steps each range is spread over.
const dutySteps = 256

// Scale fixes the measurement geometry. GateTicks and TickPeriodUS set
// the gate duration and with it the pulse count every frequency maps to,
// so they are calibration constants, not tunables: change one and the
// whole duty curve rescales.
type Scale struct {
	GateTicks    uint32 // gate sub-ticks per measurement window
	TickPeriodUS uint32 // duration of one sub-tick in microseconds
	FreqHighMHz  uint32 // high range ceiling, whole multiple of 10 MHz
}

// DefaultScale is the classic 409.6ms gate: 200 ticks of 2048µs with a
// 20MHz ceiling, i.e. a 2MHz low range.
var DefaultScale = Scale{GateTicks: 200, TickPeriodUS: 2048, FreqHighMHz: 20}

// GateUS returns the gate duration in microseconds.
func (s Scale) GateUS() uint32 {
	return s.GateTicks * s.TickPeriodUS
}

// Threshold returns the pulse count at the low range ceiling, one tenth
// of FreqHighMHz. Counts per gate = MHz × gate µs, so this is also the
// range switch point.
func (s Scale) Threshold() uint32 {
	return s.GateUS() * (s.FreqHighMHz / 10)
}

// fullScaleHigh is the pulse count at exactly FreqHighMHz.
func (s Scale) fullScaleHigh() uint32 {
	return s.GateUS() * s.FreqHighMHz
}

// Map converts one gate interval's pulse total into an 8-bit duty cycle
// and a range indicator. Each segment is a plain truncating division by
// its full-scale-over-256 step. The high segment keeps the same zero as
// the low one, so the duty drops tenfold the moment the indicator lights,
// exactly like flipping a ×10 range switch on a needle meter. The switch
// point is a hard threshold with no hysteresis; a source sitting at the
// boundary may toggle the indicator on jitter.
func (s Scale) Map(total uint32) (duty uint8, high bool) {
	if total >= s.Threshold() {
		return clampDuty(total / (s.fullScaleHigh() / dutySteps)), true
	}
	return clampDuty(total / (s.Threshold() / dutySteps)), false
}

// clampDuty saturates instead of wrapping; only totals above the high
// range ceiling can reach it.
func clampDuty(v uint32) uint8 {
	if v > DutyMax {
		return DutyMax
	}
	return uint8(v)
}

// Hertz converts a gate total back into a frequency reading.
func (s Scale) Hertz(total uint32) uint64 {
	return uint64(total) * 1_000_000 / uint64(s.GateUS())
}
