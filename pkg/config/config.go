package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	VariantFull  = "full"
	VariantDebug = "debug"

	BackendMock = "mock"
	BackendGPIO = "gpio"
)

// Config represents the host tools configuration.
type Config struct {
	Variant string        `yaml:"variant"` // "full" or "debug"
	Backend string        `yaml:"backend"` // "mock" or "gpio"
	Prompt  string        `yaml:"prompt"`
	Serial  SerialConfig  `yaml:"serial"`
	ADC     ADCConfig     `yaml:"adc"`
	GPIO    GPIOConfig    `yaml:"gpio"`
	Mock    MockConfig    `yaml:"mock"`
	Monitor MonitorConfig `yaml:"monitor"`
}

// SerialConfig contains serial port configuration. An empty port writes the
// report to stdout.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// ADCConfig contains conversion parameters.
type ADCConfig struct {
	Reference float32 `yaml:"reference"` // Reference voltage (V)
}

// GPIOConfig describes a trigger line and an MCP3208 wired to a gpiochip.
type GPIOConfig struct {
	Chip    string        `yaml:"chip"`
	Trigger int           `yaml:"trigger"` // Trigger input line offset (active low)
	Clk     int           `yaml:"clk"`
	Csz     int           `yaml:"csz"`
	Di      int           `yaml:"di"`
	Do      int           `yaml:"do"`
	Channel int           `yaml:"channel"` // MCP3208 input channel (0-7)
	Tclk    time.Duration `yaml:"tclk"`    // Half clock period
}

// MockConfig contains simulated board configuration.
type MockConfig struct {
	Offset         float32       `yaml:"offset"`          // Signal offset (V)
	Amplitude      float32       `yaml:"amplitude"`       // Signal amplitude (V)
	NoiseLevel     float32       `yaml:"noise_level"`     // Noise level (V)
	Period         time.Duration `yaml:"period"`          // Signal period
	TriggerEvery   time.Duration `yaml:"trigger_every"`   // Time between trigger presses
	PressDuration  time.Duration `yaml:"press_duration"`  // How long each press holds the trigger low
	ConversionTime time.Duration `yaml:"conversion_time"` // Time until a conversion completes
	PollInterval   time.Duration `yaml:"poll_interval"`   // Delay per trigger pin read
}

// MonitorConfig contains report monitor configuration.
type MonitorConfig struct {
	BufferSize int `yaml:"buffer_size"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Variant: VariantFull,
		Backend: BackendMock,
		Prompt:  "Ground P1.0 to start ADC...",
		Serial: SerialConfig{
			Port:     "",
			BaudRate: 115200,
		},
		ADC: ADCConfig{
			Reference: 2.68,
		},
		GPIO: GPIOConfig{
			Chip:    "gpiochip0",
			Trigger: 17,
			Clk:     16, // J8p36
			Csz:     26, // J8p37
			Di:      20, // J8p38
			Do:      21, // J8p40
			Channel: 0,
			Tclk:    500 * time.Nanosecond,
		},
		Mock: MockConfig{
			Offset:         1.34,
			Amplitude:      1.0,
			NoiseLevel:     0.005,
			Period:         10 * time.Second,
			TriggerEvery:   time.Second,
			PressDuration:  100 * time.Millisecond,
			ConversionTime: 10 * time.Microsecond,
			PollInterval:   time.Millisecond,
		},
		Monitor: MonitorConfig{
			BufferSize: 100,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that have no usable default.
func (c *Config) Validate() error {
	switch c.Variant {
	case VariantFull, VariantDebug:
	default:
		return fmt.Errorf("invalid variant %q: expected %q or %q", c.Variant, VariantFull, VariantDebug)
	}

	switch c.Backend {
	case BackendMock, BackendGPIO:
	default:
		return fmt.Errorf("invalid backend %q: expected %q or %q", c.Backend, BackendMock, BackendGPIO)
	}

	if c.ADC.Reference <= 0 {
		return fmt.Errorf("invalid reference voltage %v", c.ADC.Reference)
	}

	if c.GPIO.Channel < 0 || c.GPIO.Channel > 7 {
		return fmt.Errorf("invalid MCP3208 channel %d", c.GPIO.Channel)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Variant == "" {
		c.Variant = def.Variant
	}
	if c.Backend == "" {
		c.Backend = def.Backend
	}

	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}

	if c.ADC.Reference == 0 {
		c.ADC.Reference = def.ADC.Reference
	}

	if c.GPIO.Chip == "" {
		c.GPIO.Chip = def.GPIO.Chip
	}
	if c.GPIO.Tclk == 0 {
		c.GPIO.Tclk = def.GPIO.Tclk
	}

	if c.Mock.Period == 0 {
		c.Mock.Period = def.Mock.Period
	}
	if c.Mock.TriggerEvery == 0 {
		c.Mock.TriggerEvery = def.Mock.TriggerEvery
	}
	if c.Mock.PressDuration == 0 {
		c.Mock.PressDuration = def.Mock.PressDuration
	}
	if c.Mock.PollInterval == 0 {
		c.Mock.PollInterval = def.Mock.PollInterval
	}

	if c.Monitor.BufferSize == 0 {
		c.Monitor.BufferSize = def.Monitor.BufferSize
	}
}
