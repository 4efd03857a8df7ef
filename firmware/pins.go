//go:build tinygo

package main

import "machine"

const (
	// ADC configuration
	ADC_REFERENCE_MV = 2680 // Internal reference in millivolts (2.68V)
	ADC_RESOLUTION   = 12   // ADC resolution in bits (12-bit = 0-4095)

	// Trigger input, active low. Ground it to take a sample.
	PIN_TRIGGER = machine.D1

	// Analog input
	PIN_ADC = machine.A0

	// Serial configuration: 8N1, CRLF line endings.
	// A full report is under 140 bytes including the prompt, so a human
	// pressing the trigger can never outrun the UART.
	UART_BAUD_RATE = 115200

	// Set to true to build the stripped-down bring-up variant.
	DEBUG_VARIANT = false
)
