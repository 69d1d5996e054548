// Package config loads daemon configuration: built-in defaults, overridden
// by a .env file and the environment, overridden in turn by command-line
// flags registered in main.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/sweeney/tapwriter/internal/indicator"
	"github.com/sweeney/tapwriter/internal/input"
)

// Config holds all daemon settings.
type Config struct {
	// Decode timing
	Poll          time.Duration `env:"TAPWRITER_POLL"`
	Debounce      time.Duration `env:"TAPWRITER_DEBOUNCE"`
	DashThreshold time.Duration `env:"TAPWRITER_DASH_THRESHOLD"`
	CharGap       time.Duration `env:"TAPWRITER_CHAR_GAP"`
	WordGap       time.Duration `env:"TAPWRITER_WORD_GAP"`

	// Transport
	Broker    string        `env:"TAPWRITER_BROKER"`
	Heartbeat time.Duration `env:"TAPWRITER_HEARTBEAT"`
	HTTPAddr  string        `env:"TAPWRITER_HTTP"`
	WSBroker  string        `env:"TAPWRITER_WS_BROKER"`

	// Hardware (BCM numbering)
	PinSwitch int   `env:"TAPWRITER_PIN_SWITCH"`
	PinLight  int   `env:"TAPWRITER_PIN_LIGHT"`
	LEDPins   []int `env:"TAPWRITER_LED_PINS" envSeparator:","`
	PinTone   int   `env:"TAPWRITER_PIN_TONE"`
	ToneHz    int   `env:"TAPWRITER_TONE_HZ"`
}

// Defaults returns the build-time configuration.
func Defaults() *Config {
	return &Config{
		Poll:          10 * time.Millisecond,
		Debounce:      50 * time.Millisecond,
		DashThreshold: 200 * time.Millisecond,
		CharGap:       350 * time.Millisecond,
		WordGap:       1000 * time.Millisecond,

		Broker:    "tcp://192.168.1.200:1883",
		Heartbeat: 15 * time.Minute,
		HTTPAddr:  ":80",
		WSBroker:  "=broker",

		PinSwitch: input.DefaultPinSwitch,
		PinLight:  input.DefaultPinLight,
		LEDPins:   indicator.DefaultLEDPins,
		PinTone:   indicator.DefaultPinTone,
		ToneHz:    indicator.DefaultToneHz,
	}
}

// Load builds the config from defaults, an optional .env file, and the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the decode engine cannot honor.
func (c *Config) Validate() error {
	if c.Poll <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if c.Poll > c.Debounce {
		return fmt.Errorf("poll interval %v exceeds debounce window %v", c.Poll, c.Debounce)
	}
	if c.CharGap >= c.WordGap {
		return fmt.Errorf("char gap %v must be shorter than word gap %v", c.CharGap, c.WordGap)
	}
	return nil
}

// NetworkInfo mirrors the pi-helper env block written to /run/pi-helper.env.
type NetworkInfo struct {
	Type       string `env:"NETWORK_TYPE"`
	IP         string `env:"NETWORK_IP"`
	Status     string `env:"NETWORK_STATUS"`
	Gateway    string `env:"NETWORK_GATEWAY"`
	WifiStatus string `env:"NETWORK_WIFI_STATUS"`
	SSID       string `env:"NETWORK_WIFI_SSID"`
}

// ReadNetwork parses the pi-helper network block from the environment.
// Returns nil when the helper has not written one.
func ReadNetwork() *NetworkInfo {
	var n NetworkInfo
	if err := env.Parse(&n); err != nil {
		return nil
	}
	if n.Status == "" {
		return nil
	}
	return &n
}
