// Package sampler runs the trigger-gated ADC sampling and reporting loop.
//
// Every wait in the loop is an unbounded poll of the hardware. A trigger that
// never changes level or a conversion that never completes hangs the loop.
package sampler

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/itohio/adcmon/pkg/hal"
	"github.com/itohio/adcmon/pkg/report"
	"github.com/itohio/adcmon/pkg/stats"
)

// Options configures a Sampler.
type Options struct {
	Variant   Variant
	Reference float32 // ADC reference voltage (V); 0 means stats.DefaultReference
	Prompt    string  // printed before each trigger wait by the full variant; empty disables
}

// DefaultOptions returns the full variant with the board's reference and prompt.
func DefaultOptions() Options {
	return Options{
		Variant:   Full,
		Reference: stats.DefaultReference,
		Prompt:    report.Prompt,
	}
}

// Sampler owns all loop state. It is not safe for concurrent Step calls;
// State and Stats may be called from any goroutine.
type Sampler struct {
	hw   hal.Hardware
	opts Options

	state atomic.Int32

	mu      sync.RWMutex
	tracker stats.Tracker
}

// New creates a sampler polling hw.
func New(hw hal.Hardware, opts Options) *Sampler {
	if opts.Reference == 0 {
		opts.Reference = stats.DefaultReference
	}
	s := &Sampler{
		hw:   hw,
		opts: opts,
	}
	s.setState(WaitTriggerLow)
	return s
}

// Start prints the startup output of the selected variant.
func (s *Sampler) Start() error {
	if s.opts.Variant == Debug {
		return s.writeLine(report.Banner)
	}
	return nil
}

// Run starts the sampler and loops forever. It only returns when the console
// fails.
func (s *Sampler) Run() error {
	if err := s.Start(); err != nil {
		return err
	}
	for {
		if _, err := s.Step(); err != nil {
			return err
		}
	}
}

// Step runs one iteration of the state machine, from waiting for the trigger
// to seeing it released again. The debug variant returns a report holding only
// the raw code in High and Low.
func (s *Sampler) Step() (report.Report, error) {
	if s.opts.Variant == Full && s.opts.Prompt != "" {
		if err := s.writeLine(s.opts.Prompt); err != nil {
			return report.Report{}, err
		}
	}

	s.setState(WaitTriggerLow)
	for s.hw.ReadPin() != hal.Low {
	}

	s.setState(Convert)
	s.hw.StartConversion()

	s.setState(WaitConversionDone)
	for !s.hw.ConversionComplete() {
	}
	code := s.hw.ConversionResult()

	var (
		r     report.Report
		lines []string
	)
	switch s.opts.Variant {
	case Debug:
		r = report.Report{High: code, Low: code}
		lines = []string{report.RawLine(code)}
	default:
		s.setState(UpdateStats)
		s.mu.Lock()
		st := s.tracker.Add(code)
		s.mu.Unlock()

		r = report.Report{
			Voltage: stats.Voltage(code, s.opts.Reference),
			High:    st.Max,
			Low:     st.Min,
			Average: st.Average,
		}
		lines = r.Lines()
	}

	s.setState(EmitReport)
	for _, line := range lines {
		if err := s.writeLine(line); err != nil {
			return report.Report{}, err
		}
	}

	s.setState(WaitTriggerRelease)
	for s.hw.ReadPin() == hal.Low {
	}

	s.setState(WaitTriggerLow)
	return r, nil
}

// Stats returns the running statistics. ok is false before the first sample
// and always false for the debug variant.
func (s *Sampler) Stats() (stats.Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Stats()
}

// Window returns the samples in the averaging window, oldest first.
func (s *Sampler) Window() []uint16 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Window()
}

// State returns the state the loop is currently in.
func (s *Sampler) State() State {
	return State(s.state.Load())
}

func (s *Sampler) setState(st State) {
	s.state.Store(int32(st))
}

func (s *Sampler) writeLine(line string) error {
	if err := s.hw.WriteLine(line); err != nil {
		return fmt.Errorf("write report line: %w", err)
	}
	return nil
}
