//go:build rp2040

package main

import (
	"machine"
	"time"

	"freq2pwm/config"
	"freq2pwm/dev"
)

//go:generate tinygo flash -target=pico

// emitterStep paces the software PWM comparator: 256 steps of 4us give a
// carrier just under 1kHz, plenty for the output RC filter.
const emitterStep = 4 * time.Microsecond

var scale = dev.Scale{
	GateTicks:    config.GateTicks,
	TickPeriodUS: config.TickPeriodUS,
	FreqHighMHz:  config.FreqHighMHz,
}

func main() {
	dev.WaitCalibrationK = config.WaitCalibrationK
	dev.WaitCalibrationM = config.WaitCalibrationM

	config.RangeLED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	config.RangeLED.Low()
	config.PwmOut.Configure(machine.PinConfig{Mode: machine.PinOutput})
	config.PwmOut.Low()

	counter, err := dev.NewPWMCounter(config.FreqIn)
	if err != nil {
		panic(err.Error())
	}

	meter := dev.NewFrequencyMeter(scale, counter, func(total uint32, duty uint8, high bool) {
		config.RangeLED.Set(high)
		println("freq", scale.Hertz(total), "Hz duty", duty, "high", high)
	})
	if err := meter.Configure(); err != nil {
		panic(err.Error())
	}
	counter.Configure(meter.Accumulator())

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 3000,
	})
	machine.Watchdog.Start()

	go runGate(meter)

	// the background loop: free-running comparator driving PWM_PIN
	emitter := dev.NewEmitter(config.PwmOut, meter)
	for {
		emitter.Step()
		dev.WaitCalibrated(emitterStep)
	}
}

// runGate delivers the gate sub-ticks. The tick interval times the
// measurement window, so it rides the hardware timer via time.Ticker
// rather than anything scheduler-dependent.
func runGate(m *dev.FrequencyMeter) {
	ticker := time.NewTicker(time.Duration(config.TickPeriodUS) * time.Microsecond)
	for range ticker.C {
		m.Tick()
		machine.Watchdog.Update()
	}
}
