package board

import (
	"fmt"

	"github.com/itohio/adcmon/pkg/hal"
	"go.bug.st/serial"
)

// DefaultBaudRate matches the firmware UART configuration.
const DefaultBaudRate = 115200

// SerialConsole writes report lines to a serial port at 8N1.
type SerialConsole struct {
	*hal.WriterConsole
	port serial.Port
}

// OpenSerialConsole opens name for writing report lines.
func OpenSerialConsole(name string, baudRate int) (*SerialConsole, error) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}

	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}

	return &SerialConsole{
		WriterConsole: hal.NewWriterConsole(port),
		port:          port,
	}, nil
}

// Close closes the serial port.
func (c *SerialConsole) Close() error {
	return c.port.Close()
}
