// Package monitor reads the sampler's console output and turns it back into
// reports.
package monitor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/itohio/adcmon/pkg/report"
	"go.bug.st/serial"
)

const (
	// DefaultBaudRate matches the firmware UART.
	DefaultBaudRate = 115200
	// DefaultBufferSize is the default size for the reports channel buffer.
	DefaultBufferSize = 100
)

// Port represents a serial port.
type Port struct {
	Name        string
	Description string
}

// Monitor parses reports from a serial port or any other byte stream.
type Monitor struct {
	port     string
	baudRate int
	bufSize  int

	conn      io.ReadCloser
	reports   chan report.Report
	done      chan struct{}
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool
}

// New creates a monitor for the given port, baud rate and buffer size.
func New(port string, baudRate int, bufSize int) *Monitor {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	if bufSize == 0 {
		bufSize = DefaultBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Monitor{
		port:     port,
		baudRate: baudRate,
		bufSize:  bufSize,
		reports:  make(chan report.Report, bufSize),
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Ports returns a list of available serial ports.
func Ports() ([]Port, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	result := make([]Port, 0, len(ports))
	for _, name := range ports {
		result = append(result, Port{Name: name, Description: name})
	}
	return result, nil
}

// Connect opens the serial port at 8N1 and starts reading reports.
func (m *Monitor) Connect() error {
	port, err := serial.Open(m.port, &serial.Mode{
		BaudRate: m.baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", m.port, err)
	}

	if err := m.Attach(port); err != nil {
		port.Close()
		return err
	}
	return nil
}

// Attach starts reading reports from r. The monitor owns r and closes it on
// Close.
func (m *Monitor) Attach(r io.ReadCloser) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return fmt.Errorf("already connected")
	}
	if m.ctx.Err() != nil {
		return fmt.Errorf("monitor closed")
	}

	m.conn = r
	m.connected = true

	go m.readReports(r)

	return nil
}

// Close stops reading and closes the stream and the reports channel.
func (m *Monitor) Close() error {
	m.mu.Lock()
	if !m.connected {
		m.mu.Unlock()
		return nil
	}

	m.cancel()

	var err error
	if m.conn != nil {
		err = m.conn.Close()
		m.conn = nil
	}
	m.connected = false
	m.mu.Unlock()

	// the reader closes the channel once the stream is gone
	<-m.done

	return err
}

// Reports returns the channel of parsed reports.
func (m *Monitor) Reports() <-chan report.Report {
	return m.reports
}

// IsConnected returns whether a stream is attached.
func (m *Monitor) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// readReports scans lines from r and feeds them to a report parser.
func (m *Monitor) readReports(r io.Reader) {
	defer close(m.done)
	defer close(m.reports)

	var parser report.Parser
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-m.ctx.Done():
			return
		default:
		}

		rep, ok, err := parser.Feed(scanner.Text())
		if err != nil {
			log.Printf("Failed to parse report: %v", err)
			continue
		}
		if !ok {
			continue
		}

		select {
		case m.reports <- rep:
		case <-m.ctx.Done():
			return
		default:
			log.Printf("Reports channel full, dropping report")
		}
	}

	if err := scanner.Err(); err != nil && m.ctx.Err() == nil {
		log.Printf("Error reading reports: %v", err)
	}
}
