package dev

import "testing"

func TestMeterConfigure(t *testing.T) {
	tests := []struct {
		name    string
		scale   Scale
		counter Counter
		want    error
	}{
		{name: "default scale", scale: DefaultScale, counter: &fakeCounter{}, want: nil},
		{name: "nil counter", scale: DefaultScale, counter: nil, want: ErrNilCounter},
		{name: "zero gate", scale: Scale{TickPeriodUS: 2048, FreqHighMHz: 20}, counter: &fakeCounter{}, want: ErrZeroGate},
		{name: "zero tick period", scale: Scale{GateTicks: 200, FreqHighMHz: 20}, counter: &fakeCounter{}, want: ErrZeroTick},
		{name: "zero ceiling", scale: Scale{GateTicks: 200, TickPeriodUS: 2048}, counter: &fakeCounter{}, want: ErrBadCeiling},
		{name: "fractional low range", scale: Scale{GateTicks: 200, TickPeriodUS: 2048, FreqHighMHz: 25}, counter: &fakeCounter{}, want: ErrBadCeiling},
		{name: "gate too short", scale: Scale{GateTicks: 1, TickPeriodUS: 100, FreqHighMHz: 10}, counter: &fakeCounter{}, want: ErrScaleTooCoarse},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewFrequencyMeter(tc.scale, tc.counter, nil)
			if err := m.Configure(); err != tc.want {
				t.Errorf("Configure() = %v, want %v", err, tc.want)
			}
		})
	}
}

// Full measurement cycle: edges accumulate (with wraps), the gate closes
// after GateTicks ticks, and the published output matches the mapping.
func TestMeterMeasurement(t *testing.T) {
	fc := &fakeCounter{}
	s := DefaultScale

	var gotTotal uint32
	calls := 0
	m := NewFrequencyMeter(s, fc, func(total uint32, duty uint8, high bool) {
		gotTotal = total
		calls++
	})
	if err := m.Configure(); err != nil {
		t.Fatal(err)
	}

	if duty, high := m.Output(); duty != 0 || high {
		t.Fatalf("output before first gate = %d,%v, want 0,false", duty, high)
	}

	// 3 wraps plus a partial count within one gate window
	m.OnOverflow()
	m.OnOverflow()
	m.OnOverflow()
	fc.value = 12345

	for i := uint32(0); i < s.GateTicks-1; i++ {
		m.Tick()
	}
	if calls != 0 {
		t.Fatal("gate closed early")
	}
	m.Tick()

	want := uint32(3*CounterSpan + 12345)
	if calls != 1 || gotTotal != want {
		t.Fatalf("callback: calls=%d total=%d, want 1 call with %d", calls, gotTotal, want)
	}

	wantDuty, wantHigh := s.Map(want)
	duty, high := m.Output()
	if duty != wantDuty || high != wantHigh {
		t.Errorf("output = %d,%v, want %d,%v", duty, high, wantDuty, wantHigh)
	}
	if m.Duty() != wantDuty || m.HighRange() != wantHigh {
		t.Errorf("Duty/HighRange = %d,%v, want %d,%v", m.Duty(), m.HighRange(), wantDuty, wantHigh)
	}
}

// The gate close resets the interval: a silent second window publishes
// zero, not a stale reading of the accumulator.
func TestMeterIntervalIsolation(t *testing.T) {
	fc := &fakeCounter{value: 50000}
	s := DefaultScale

	var totals []uint32
	m := NewFrequencyMeter(s, fc, func(total uint32, duty uint8, high bool) {
		totals = append(totals, total)
	})
	if err := m.Configure(); err != nil {
		t.Fatal(err)
	}

	for i := uint32(0); i < s.GateTicks; i++ {
		m.Tick()
	}
	for i := uint32(0); i < s.GateTicks; i++ {
		m.Tick()
	}

	if len(totals) != 2 || totals[0] != 50000 || totals[1] != 0 {
		t.Errorf("totals = %v, want [50000 0]", totals)
	}
	if m.Duty() != 0 {
		t.Errorf("duty after silent interval = %d, want 0", m.Duty())
	}
}

// A low-range signal and a high-range signal in consecutive windows must
// both publish correctly, including the indicator flip.
func TestMeterRangeFlip(t *testing.T) {
	fc := &fakeCounter{}
	s := DefaultScale

	m := NewFrequencyMeter(s, fc, nil)
	if err := m.Configure(); err != nil {
		t.Fatal(err)
	}

	// ~1MHz: 409600 counts = 6 wraps + 16384
	for i := 0; i < 6; i++ {
		m.OnOverflow()
	}
	fc.value = 16384
	for i := uint32(0); i < s.GateTicks; i++ {
		m.Tick()
	}
	if duty, high := m.Output(); high || duty != 128 {
		t.Fatalf("1MHz window: output = %d,%v, want 128,false", duty, high)
	}

	// ~10MHz: 4096000 counts = 62 wraps + 32768
	for i := 0; i < 62; i++ {
		m.OnOverflow()
	}
	fc.value = 32768
	for i := uint32(0); i < s.GateTicks; i++ {
		m.Tick()
	}
	if duty, high := m.Output(); !high || duty != 128 {
		t.Errorf("10MHz window: output = %d,%v, want 128,true", duty, high)
	}
}
