// Package hal describes the peripherals the sampling loop polls.
//
// Every method is expected to return immediately: waiting is the caller's job
// and is done by polling, never by blocking inside the hardware layer.
package hal

// Level is the logic level of a digital input pin.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// Trigger is the digital input that gates conversions (active low).
type Trigger interface {
	ReadPin() Level
}

// Converter is a single-shot ADC.
type Converter interface {
	StartConversion()
	ConversionComplete() bool
	ConversionResult() uint16
}

// Console is the line-oriented serial output.
// WriteLine blocks until the line and its terminator have been written.
type Console interface {
	WriteLine(line string) error
}

// Hardware is the full capability set used by the sampler.
type Hardware interface {
	Trigger
	Converter
	Console
}

type bound struct {
	Trigger
	Converter
	Console
}

// Bind composes independent peripherals into a Hardware.
func Bind(t Trigger, c Converter, con Console) Hardware {
	return bound{Trigger: t, Converter: c, Console: con}
}

// Ensure Script implements Hardware.
var _ Hardware = (*Script)(nil)
