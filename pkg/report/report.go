// Package report formats and parses the sampler's console output.
//
// A full report is four lines:
//
//	Current voltage reading: 1.340000
//	High ADC reading: 0xfff
//	Low ADC reading: 0x0
//	Average of last 16 trials: 0x7ff
package report

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	VoltagePrefix = "Current voltage reading: "
	HighPrefix    = "High ADC reading: "
	LowPrefix     = "Low ADC reading: "
	AveragePrefix = "Average of last 16 trials: "

	// Prompt is printed before waiting for the trigger.
	Prompt = "Ground P1.0 to start ADC..."
	// Banner is printed once by the debug variant.
	Banner = "Starting program..."
)

// Report is the output of one full-variant iteration.
type Report struct {
	Voltage float32
	High    uint16
	Low     uint16
	Average uint16
}

// Lines returns the report lines without terminators.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("%s%f", VoltagePrefix, r.Voltage),
		fmt.Sprintf("%s0x%x", HighPrefix, r.High),
		fmt.Sprintf("%s0x%x", LowPrefix, r.Low),
		fmt.Sprintf("%s0x%x", AveragePrefix, r.Average),
	}
}

// RawLine formats a raw conversion result as the debug variant prints it:
// high byte then low byte, in decimal.
func RawLine(code uint16) string {
	return fmt.Sprintf("current: %d, %d", code>>8, code&0xFF)
}

func parseHex(field, s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	return uint16(v), nil
}
