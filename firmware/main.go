//go:build tinygo

//go:generate tinygo flash -target=xiao

package main

import (
	"machine"

	"github.com/itohio/adcmon/pkg/hal"
	"github.com/itohio/adcmon/pkg/sampler"
)

var uart = machine.UART0

// board binds the sampler to the MCU peripherals.
type board struct {
	trigger machine.Pin
	adc     machine.ADC
	result  uint16
}

func (b *board) ReadPin() hal.Level {
	return hal.Level(b.trigger.Get())
}

// StartConversion blocks inside machine.ADC.Get, so the conversion is
// complete as soon as it returns.
func (b *board) StartConversion() {
	// Get returns a left-aligned 16-bit value
	b.result = b.adc.Get() >> (16 - ADC_RESOLUTION)
}

func (b *board) ConversionComplete() bool {
	return true
}

func (b *board) ConversionResult() uint16 {
	return b.result
}

func main() {
	PIN_TRIGGER.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	PIN_ADC.Configure(machine.PinConfig{Mode: machine.PinInput})

	machine.InitADC()
	adc := machine.ADC{Pin: PIN_ADC}
	adc.Configure(machine.ADCConfig{
		Reference:  ADC_REFERENCE_MV,
		Resolution: ADC_RESOLUTION,
	})

	uart.Configure(machine.UARTConfig{
		BaudRate: UART_BAUD_RATE,
	})

	b := &board{trigger: PIN_TRIGGER, adc: adc}
	hw := hal.Bind(b, b, hal.NewWriterConsole(uart))

	opts := sampler.DefaultOptions()
	opts.Reference = ADC_REFERENCE_MV / 1000.0
	if DEBUG_VARIANT {
		opts.Variant = sampler.Debug
		opts.Prompt = ""
	}

	s := sampler.New(hw, opts)
	if err := s.Run(); err != nil {
		// nothing left to report to but the debugger
		println("sampler stopped:", err.Error())
	}
	for {
	}
}
