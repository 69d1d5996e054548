package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Poll != 10*time.Millisecond {
		t.Errorf("poll: got %v", cfg.Poll)
	}
	if cfg.Debounce != 50*time.Millisecond {
		t.Errorf("debounce: got %v", cfg.Debounce)
	}
	if cfg.DashThreshold != 200*time.Millisecond {
		t.Errorf("dash threshold: got %v", cfg.DashThreshold)
	}
	if cfg.CharGap != 350*time.Millisecond {
		t.Errorf("char gap: got %v", cfg.CharGap)
	}
	if cfg.WordGap != 1000*time.Millisecond {
		t.Errorf("word gap: got %v", cfg.WordGap)
	}
	if len(cfg.LEDPins) != 6 {
		t.Errorf("led pins: got %d, want 6", len(cfg.LEDPins))
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TAPWRITER_POLL", "5ms")
	t.Setenv("TAPWRITER_BROKER", "tcp://10.0.0.1:1883")
	t.Setenv("TAPWRITER_LED_PINS", "1,2,3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Poll != 5*time.Millisecond {
		t.Errorf("poll: got %v, want 5ms", cfg.Poll)
	}
	if cfg.Broker != "tcp://10.0.0.1:1883" {
		t.Errorf("broker: got %q", cfg.Broker)
	}
	if len(cfg.LEDPins) != 3 || cfg.LEDPins[2] != 3 {
		t.Errorf("led pins: got %v", cfg.LEDPins)
	}
	// Untouched settings keep their defaults.
	if cfg.Debounce != 50*time.Millisecond {
		t.Errorf("debounce: got %v", cfg.Debounce)
	}
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := Defaults()
	bad.Poll = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero poll interval")
	}

	bad = Defaults()
	bad.Poll = 100 * time.Millisecond
	if err := bad.Validate(); err == nil {
		t.Error("expected error when poll exceeds the debounce window")
	}

	bad = Defaults()
	bad.CharGap = 2 * time.Second
	if err := bad.Validate(); err == nil {
		t.Error("expected error when char gap reaches the word gap")
	}
}

func TestReadNetworkAllSet(t *testing.T) {
	t.Setenv("NETWORK_TYPE", "wifi")
	t.Setenv("NETWORK_IP", "192.168.1.100")
	t.Setenv("NETWORK_STATUS", "connected")
	t.Setenv("NETWORK_GATEWAY", "192.168.1.1")
	t.Setenv("NETWORK_WIFI_STATUS", "connected")
	t.Setenv("NETWORK_WIFI_SSID", "MyNetwork")

	n := ReadNetwork()
	if n == nil {
		t.Fatal("expected non-nil NetworkInfo")
	}
	if n.Type != "wifi" || n.IP != "192.168.1.100" || n.SSID != "MyNetwork" {
		t.Errorf("got %+v", n)
	}
}

func TestReadNetworkNoneSet(t *testing.T) {
	if n := ReadNetwork(); n != nil {
		t.Errorf("expected nil when NETWORK_STATUS is unset, got %+v", n)
	}
}

func TestReadNetworkPartial(t *testing.T) {
	t.Setenv("NETWORK_STATUS", "connected")

	n := ReadNetwork()
	if n == nil {
		t.Fatal("expected non-nil NetworkInfo when NETWORK_STATUS is set")
	}
	if n.Status != "connected" {
		t.Errorf("status: got %q", n.Status)
	}
	if n.Type != "" || n.IP != "" {
		t.Errorf("expected empty fields, got %+v", n)
	}
}
