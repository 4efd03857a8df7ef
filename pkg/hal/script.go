package hal

import (
	"runtime"
	"sync"
)

// Script is a scripted Hardware for tests and dry runs.
//
// Trigger levels are played back one per ReadPin call and the last level
// repeats forever, so a script that ends on Low models a stuck trigger.
// Conversion codes are returned one per conversion; once exhausted the last
// code repeats.
type Script struct {
	mu sync.Mutex

	levels    []Level
	codes     []uint16
	busyPolls int

	pending int // busy polls left for the running conversion
	result  uint16

	pinReads    int
	conversions int
	lines       []string
	writeErr    error
}

// NewScript creates a scripted device. An empty levels slice reads High.
func NewScript(levels []Level, codes []uint16) *Script {
	return &Script{
		levels: append([]Level(nil), levels...),
		codes:  append([]uint16(nil), codes...),
	}
}

// Presses returns the trigger levels for n separate press-and-release events,
// starting and ending released.
func Presses(n int) []Level {
	levels := make([]Level, 0, 2*n+1)
	levels = append(levels, High)
	for i := 0; i < n; i++ {
		levels = append(levels, Low, High)
	}
	return levels
}

// WithBusyPolls makes ConversionComplete report false n times per conversion.
func (s *Script) WithBusyPolls(n int) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busyPolls = n
	return s
}

// WithWriteError makes every WriteLine fail with err.
func (s *Script) WithWriteError(err error) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
	return s
}

// SetLevel replaces the rest of the level script with a constant level.
func (s *Script) SetLevel(l Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels = []Level{l}
}

func (s *Script) ReadPin() Level {
	s.mu.Lock()
	s.pinReads++
	l := High
	if len(s.levels) > 0 {
		l = s.levels[0]
		if len(s.levels) > 1 {
			s.levels = s.levels[1:]
		}
	}
	s.mu.Unlock()

	// callers spin on this; let a test goroutine in
	runtime.Gosched()
	return l
}

func (s *Script) StartConversion() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversions++
	s.pending = s.busyPolls
	if len(s.codes) > 0 {
		s.result = s.codes[0]
		if len(s.codes) > 1 {
			s.codes = s.codes[1:]
		}
	}
}

func (s *Script) ConversionComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending > 0 {
		s.pending--
		return false
	}
	return true
}

func (s *Script) ConversionResult() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

func (s *Script) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	s.lines = append(s.lines, line)
	return nil
}

// Lines returns a copy of everything written so far.
func (s *Script) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// PinReads returns the number of ReadPin calls.
func (s *Script) PinReads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pinReads
}

// Conversions returns the number of conversions started.
func (s *Script) Conversions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversions
}
