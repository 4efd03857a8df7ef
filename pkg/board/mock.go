package board

import (
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/itohio/adcmon/pkg/config"
	"github.com/itohio/adcmon/pkg/hal"
	"github.com/itohio/adcmon/pkg/stats"
)

// Mock simulates a board with a slowly varying analog input and a trigger
// button pressed at a fixed rate.
type Mock struct {
	cfg *config.MockConfig
	ref float32

	mu        sync.Mutex
	start     time.Time
	convStart time.Time
	result    uint16

	now   func() time.Time
	sleep func(time.Duration)
}

// NewMock creates a simulated board. ref is the ADC reference voltage.
func NewMock(cfg *config.MockConfig, ref float32) *Mock {
	if cfg == nil {
		def := config.Default().Mock
		cfg = &def
	}
	if ref <= 0 {
		ref = stats.DefaultReference
	}

	return &Mock{
		cfg:   cfg,
		ref:   ref,
		start: time.Now(),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// ReadPin holds the trigger low for PressDuration at the end of every
// TriggerEvery period.
func (m *Mock) ReadPin() hal.Level {
	if m.cfg.PollInterval > 0 {
		m.sleep(m.cfg.PollInterval)
	}

	m.mu.Lock()
	elapsed := m.now().Sub(m.start)
	m.mu.Unlock()

	if m.cfg.TriggerEvery <= 0 {
		return hal.High
	}
	phase := elapsed % m.cfg.TriggerEvery
	if phase >= m.cfg.TriggerEvery-m.cfg.PressDuration {
		return hal.Low
	}
	return hal.High
}

// StartConversion samples the simulated input.
func (m *Mock) StartConversion() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.convStart = now
	m.result = stats.Code(m.signal(now.Sub(m.start)), m.ref)
}

// ConversionComplete reports true once ConversionTime has passed.
func (m *Mock) ConversionComplete() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now().Sub(m.convStart) >= m.cfg.ConversionTime
}

func (m *Mock) ConversionResult() uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}

// Close is a no-op.
func (m *Mock) Close() error {
	return nil
}

// signal returns the simulated input voltage at t since start.
func (m *Mock) signal(t time.Duration) float32 {
	v := m.cfg.Offset
	if m.cfg.Period > 0 {
		v += m.cfg.Amplitude * math32.Sin(2*math32.Pi*float32(t)/float32(m.cfg.Period))
	}

	ns := float32(t.Nanoseconds())
	noise := (math32.Sin(ns*0.001) + math32.Cos(ns*0.0013)) * m.cfg.NoiseLevel * 0.5
	return v + noise
}
