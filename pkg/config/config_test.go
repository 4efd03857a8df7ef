package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, VariantFull, cfg.Variant)
	assert.Equal(t, BackendMock, cfg.Backend)
	assert.Equal(t, "Ground P1.0 to start ADC...", cfg.Prompt)
	assert.Equal(t, "", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
	assert.Equal(t, float32(2.68), cfg.ADC.Reference)
	assert.Equal(t, "gpiochip0", cfg.GPIO.Chip)
	assert.Equal(t, 500*time.Nanosecond, cfg.GPIO.Tclk)
	assert.Equal(t, time.Second, cfg.Mock.TriggerEvery)
	assert.Equal(t, 100*time.Millisecond, cfg.Mock.PressDuration)
	assert.Equal(t, 100, cfg.Monitor.BufferSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, Default(), cfg)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yaml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoad_ValidYAML(t *testing.T) {
	name := writeTemp(t, `
variant: debug
backend: gpio
prompt: ""

serial:
  port: "/dev/ttyUSB0"
  baud_rate: 57600

adc:
  reference: 3.3

gpio:
  chip: gpiochip1
  trigger: 4
  channel: 3
  tclk: 1us

mock:
  amplitude: 0.5
  trigger_every: 250ms
`)

	cfg, err := Load(name)
	require.NoError(t, err)

	assert.Equal(t, VariantDebug, cfg.Variant)
	assert.Equal(t, BackendGPIO, cfg.Backend)
	assert.Equal(t, "", cfg.Prompt)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
	assert.Equal(t, 57600, cfg.Serial.BaudRate)
	assert.Equal(t, float32(3.3), cfg.ADC.Reference)
	assert.Equal(t, "gpiochip1", cfg.GPIO.Chip)
	assert.Equal(t, 4, cfg.GPIO.Trigger)
	assert.Equal(t, 3, cfg.GPIO.Channel)
	assert.Equal(t, time.Microsecond, cfg.GPIO.Tclk)
	assert.Equal(t, float32(0.5), cfg.Mock.Amplitude)
	assert.Equal(t, 250*time.Millisecond, cfg.Mock.TriggerEvery)
	assert.Equal(t, float32(1.34), cfg.Mock.Offset) // default
}

func TestLoad_InvalidYAML(t *testing.T) {
	name := writeTemp(t, "invalid: yaml: content: [")

	cfg, err := Load(name)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	name := writeTemp(t, `
serial:
  port: "/dev/ttyACM0"
adc:
  reference: 0
`)

	cfg, err := Load(name)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)      // default
	assert.Equal(t, float32(2.68), cfg.ADC.Reference) // zero replaced
	assert.Equal(t, VariantFull, cfg.Variant)         // default
	assert.Equal(t, time.Millisecond, cfg.Mock.PollInterval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown variant", "variant: verbose\n"},
		{"unknown backend", "backend: spi\n"},
		{"negative reference", "adc:\n  reference: -1\n"},
		{"channel out of range", "gpio:\n  channel: 8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeTemp(t, tt.yaml))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Serial.Port = "/dev/ttyUSB0"
	cfg.Variant = VariantDebug
	cfg.Mock.TriggerEvery = 3 * time.Second

	name := writeTemp(t, "")
	require.NoError(t, cfg.Save(name))

	loaded, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
