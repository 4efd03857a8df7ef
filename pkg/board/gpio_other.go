//go:build !linux || tinygo

package board

import (
	"errors"

	"github.com/itohio/adcmon/pkg/config"
)

// ErrGPIOUnsupported is returned by OpenGPIO on platforms without gpiochip.
var ErrGPIOUnsupported = errors.New("gpio backend requires linux")

// OpenGPIO is only available on linux.
func OpenGPIO(config.GPIOConfig) (Device, error) {
	return nil, ErrGPIOUnsupported
}
