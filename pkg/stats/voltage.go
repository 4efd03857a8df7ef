package stats

import "github.com/chewxy/math32"

const (
	// Resolution is the ADC resolution in bits.
	Resolution = 12
	// FullScale is the divisor of the code-to-voltage conversion.
	FullScale = 1 << Resolution
	// MaxCode is the largest conversion result.
	MaxCode = FullScale - 1
	// DefaultReference is the internal bandgap reference in volts.
	DefaultReference = 2.68
)

// Voltage converts a conversion result to volts: code / 4096 * ref.
func Voltage(code uint16, ref float32) float32 {
	return float32(code) / FullScale * ref
}

// Code converts a voltage to the nearest conversion result, clamped to
// [0, MaxCode]. It is the inverse of Voltage up to rounding.
func Code(v, ref float32) uint16 {
	if ref <= 0 || math32.IsNaN(v) {
		return 0
	}
	c := math32.Floor(v/ref*FullScale + 0.5)
	switch {
	case c < 0:
		return 0
	case c > MaxCode:
		return MaxCode
	}
	return uint16(c)
}
