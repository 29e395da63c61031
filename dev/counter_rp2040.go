//go:build rp2040

package dev

import (
	"device/rp"
	"machine"
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"
)

// PWMCounter runs an RP2040 PWM slice as the free-running pulse counter:
// with the divider in rising-edge mode the slice's 16-bit CTR increments
// once per edge on its B channel input, up to clk_sys/2. The slice wrap
// interrupt supplies the overflow extension events.
type PWMCounter struct {
	pin   machine.Pin
	slice uint8
}

// pwmSliceHW mirrors one slice's register block inside rp.PWM.
type pwmSliceHW struct {
	CSR volatile.Register32
	DIV volatile.Register32
	CTR volatile.Register32
	CC  volatile.Register32
	TOP volatile.Register32
}

func pwmSlice(n uint8) *pwmSliceHW {
	return &(*[8]pwmSliceHW)(unsafe.Pointer(rp.PWM))[n]
}

// wrapTargets routes the shared PWM_IRQ_WRAP interrupt to the accumulator
// of whichever slice wrapped.
var wrapTargets [8]*PulseAccumulator

// NewPWMCounter prepares a counter on the given pin. Edge counting only
// works on B channel inputs, which on the RP2040 are the odd GPIOs.
func NewPWMCounter(pin machine.Pin) (*PWMCounter, error) {
	if uint8(pin)&1 == 0 {
		return nil, ErrNotBChannelPin
	}
	return &PWMCounter{pin: pin, slice: uint8(pin>>1) & 0x7}, nil
}

// Configure claims the slice for edge counting and wires its wrap
// interrupt to the accumulator.
func (c *PWMCounter) Configure(acc *PulseAccumulator) {
	c.pin.Configure(machine.PinConfig{Mode: machine.PinPWM})

	hw := pwmSlice(c.slice)
	hw.CSR.Set(0)
	hw.DIV.Set(1 << rp.PWM_CH0_DIV_INT_Pos) // divisor 1.0, one count per edge
	hw.TOP.Set(0xFFFF)
	hw.CTR.Set(0)

	wrapTargets[c.slice] = acc

	rp.PWM.INTR.Set(1 << c.slice) // drop any stale wrap flag
	rp.PWM.INTE.SetBits(1 << c.slice)
	intr := interrupt.New(rp.IRQ_PWM_IRQ_WRAP, handlePWMWrap)
	intr.Enable()

	hw.CSR.Set(rp.PWM_CH0_CSR_DIVMODE_RISE<<rp.PWM_CH0_CSR_DIVMODE_Pos |
		rp.PWM_CH0_CSR_EN)
}

func (c *PWMCounter) Count() uint16 {
	return uint16(pwmSlice(c.slice).CTR.Get())
}

func (c *PWMCounter) Reset() {
	pwmSlice(c.slice).CTR.Set(0)
}

func handlePWMWrap(interrupt.Interrupt) {
	status := rp.PWM.INTS.Get()
	rp.PWM.INTR.Set(status) // acknowledge
	for i := uint8(0); i < 8; i++ {
		if status&(1<<i) != 0 && wrapTargets[i] != nil {
			wrapTargets[i].OnOverflow()
		}
	}
}
