package sampler

import "fmt"

// State is a step of the sampling loop.
type State int32

const (
	WaitTriggerLow State = iota
	Convert
	WaitConversionDone
	UpdateStats
	EmitReport
	WaitTriggerRelease
)

var stateNames = [...]string{
	WaitTriggerLow:     "WAIT_TRIGGER_LOW",
	Convert:            "CONVERT",
	WaitConversionDone: "WAIT_CONVERSION_DONE",
	UpdateStats:        "UPDATE_STATS",
	EmitReport:         "REPORT",
	WaitTriggerRelease: "WAIT_TRIGGER_RELEASE",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int32(s))
	}
	return stateNames[s]
}

// Variant selects what the loop tracks and prints.
type Variant int

const (
	// Full tracks statistics and prints the four-line report.
	Full Variant = iota
	// Debug prints a startup banner and the raw conversion bytes only.
	Debug
)

func (v Variant) String() string {
	switch v {
	case Full:
		return "full"
	case Debug:
		return "debug"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant parses "full" or "debug".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "full":
		return Full, nil
	case "debug":
		return Debug, nil
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}
