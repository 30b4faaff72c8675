// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ---- validate ----

func TestValidate_NegativeBaudRate(t *testing.T) {
	cfg := &Config{}
	cfg.Repatcher.Device.BaudRate = -9600

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative baud_rate")
	}
}

func TestValidate_OSCPortOutOfRange(t *testing.T) {
	cfg := &Config{}
	cfg.Repatcher.OSC.Port = 70000

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for osc port 70000")
	}
}

func TestValidate_ZeroValuesAreLegal(t *testing.T) {
	cfg := &Config{}

	if err := Validate(cfg); err != nil {
		t.Fatalf("zero config should validate, got %v", err)
	}
	if cfg.Repatcher.Device.Port != "" {
		t.Fatalf("Validate mutated configuration")
	}
}

// ---- normalize ----

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{}
	Normalize(cfg)

	d := cfg.Repatcher.Device
	if d.Port != DefaultDevicePort || d.BaudRate != DefaultBaudRate {
		t.Fatalf("device defaults not applied: %+v", d)
	}

	o := cfg.Repatcher.OSC
	if o.Address != DefaultOSCAddress || o.Port != DefaultOSCPort {
		t.Fatalf("osc defaults not applied: %+v", o)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Repatcher.Device.Port = "/dev/ttyUSB3"
	cfg.Repatcher.OSC.Port = 9000
	Normalize(cfg)

	if cfg.Repatcher.Device.Port != "/dev/ttyUSB3" {
		t.Fatalf("explicit device port overwritten: %s", cfg.Repatcher.Device.Port)
	}
	if cfg.Repatcher.OSC.Port != 9000 {
		t.Fatalf("explicit osc port overwritten: %d", cfg.Repatcher.OSC.Port)
	}
}

// ---- load ----

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repatcher.yaml")
	data := []byte(`
repatcher:
  device:
    port: /dev/ttyACM1
    baud_rate: 115200
  osc:
    address: 192.168.1.50
    port: 8000
  verbose: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}

	if cfg.Repatcher.Device.Port != "/dev/ttyACM1" {
		t.Fatalf("device port=%s", cfg.Repatcher.Device.Port)
	}
	if cfg.Repatcher.Device.BaudRate != 115200 {
		t.Fatalf("baud_rate=%d", cfg.Repatcher.Device.BaudRate)
	}
	if cfg.Repatcher.OSC.Address != "192.168.1.50" || cfg.Repatcher.OSC.Port != 8000 {
		t.Fatalf("osc destination=%+v", cfg.Repatcher.OSC)
	}
	if !cfg.Repatcher.Verbose {
		t.Fatalf("verbose flag not parsed")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
