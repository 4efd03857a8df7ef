// Package board binds the sampler's hardware abstraction to host devices.
package board

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/itohio/adcmon/pkg/config"
	"github.com/itohio/adcmon/pkg/hal"
)

// Device is a trigger input and converter pair that owns OS resources.
type Device interface {
	hal.Trigger
	hal.Converter
	io.Closer
}

// Ensure Mock implements Device.
var _ Device = (*Mock)(nil)

// Board is a Device plus the console the report goes to.
type Board struct {
	hal.Hardware

	closers []io.Closer
}

// New binds dev and console. Closing the board closes dev, and console too
// when it is an io.Closer.
func New(dev Device, console hal.Console) *Board {
	b := &Board{
		Hardware: hal.Bind(dev, dev, console),
		closers:  []io.Closer{dev},
	}
	if c, ok := console.(io.Closer); ok {
		b.closers = append(b.closers, c)
	}
	return b
}

// Open creates the board selected by cfg.Backend. The report goes to the
// configured serial port, or stdout when no port is set.
func Open(cfg *config.Config) (*Board, error) {
	var (
		dev Device
		err error
	)
	switch cfg.Backend {
	case config.BackendMock:
		dev = NewMock(&cfg.Mock, cfg.ADC.Reference)
	case config.BackendGPIO:
		dev, err = OpenGPIO(cfg.GPIO)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	var console hal.Console
	if cfg.Serial.Port == "" {
		console = hal.NewWriterConsole(os.Stdout)
	} else {
		sc, err := OpenSerialConsole(cfg.Serial.Port, cfg.Serial.BaudRate)
		if err != nil {
			dev.Close()
			return nil, err
		}
		console = sc
	}

	return New(dev, console), nil
}

// Close releases the device and the console.
func (b *Board) Close() error {
	var errs []error
	for _, c := range b.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
