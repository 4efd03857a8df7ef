//go:build linux && !tinygo

package board

import (
	"fmt"
	"log"
	"sync"

	"github.com/itohio/adcmon/pkg/config"
	"github.com/itohio/adcmon/pkg/hal"
	"github.com/warthog618/gpiod"
	"github.com/warthog618/gpiod/spi/mcp3w0c"
)

// Ensure GPIO implements Device.
var _ Device = (*GPIO)(nil)

// GPIO reads the trigger from a gpiochip line and converts with an MCP3208
// bit-banged over four more lines of the same chip.
type GPIO struct {
	trigger *gpiod.Line
	adc     *mcp3w0c.MCP3w0c
	channel int

	mu      sync.Mutex
	result  uint16
	lastErr string
}

// OpenGPIO requests the trigger line (input, pull-up) and the MCP3208 lines.
func OpenGPIO(cfg config.GPIOConfig) (*GPIO, error) {
	c, err := gpiod.NewChip(cfg.Chip, gpiod.WithConsumer("adcmon"))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Chip, err)
	}
	// requested lines outlive the chip handle
	defer c.Close()

	trigger, err := c.RequestLine(cfg.Trigger, gpiod.AsInput, gpiod.WithPullUp)
	if err != nil {
		return nil, fmt.Errorf("failed to request trigger line %d: %w", cfg.Trigger, err)
	}

	adc, err := mcp3w0c.NewMCP3208(c, cfg.Clk, cfg.Csz, cfg.Di, cfg.Do, mcp3w0c.WithTclk(cfg.Tclk))
	if err != nil {
		trigger.Close()
		return nil, fmt.Errorf("failed to set up MCP3208: %w", err)
	}

	return &GPIO{
		trigger: trigger,
		adc:     adc,
		channel: cfg.Channel,
	}, nil
}

// ReadPin returns the trigger level. A read error counts as not asserted.
func (g *GPIO) ReadPin() hal.Level {
	v, err := g.trigger.Value()
	if err != nil {
		g.logOnce(fmt.Errorf("trigger read: %w", err))
		return hal.High
	}
	return hal.Level(v != 0)
}

// StartConversion performs the whole MCP3208 transfer; the conversion is
// complete when it returns.
func (g *GPIO) StartConversion() {
	d, err := g.adc.Read(g.channel)
	if err != nil {
		g.logOnce(fmt.Errorf("conversion on channel %d: %w", g.channel, err))
	}

	g.mu.Lock()
	g.result = d
	g.mu.Unlock()
}

func (g *GPIO) ConversionComplete() bool {
	return true
}

func (g *GPIO) ConversionResult() uint16 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result
}

// Close releases all requested lines.
func (g *GPIO) Close() error {
	err := g.adc.Close()
	if cerr := g.trigger.Close(); err == nil {
		err = cerr
	}
	return err
}

// logOnce suppresses repeats of the same error from the polling loop.
func (g *GPIO) logOnce(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if msg := err.Error(); msg != g.lastErr {
		log.Printf("gpio: %v", err)
		g.lastErr = msg
	}
}
