package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNilCounter     = Error("pulse counter not set")
	ErrZeroGate       = Error("gate tick count is zero")
	ErrZeroTick       = Error("tick period is zero")
	ErrBadCeiling     = Error("range ceiling must be a whole multiple of 10 MHz")
	ErrScaleTooCoarse = Error("gate too short for 8-bit duty mapping")
	ErrNotBChannelPin = Error("input pin is not a PWM B channel")
)
