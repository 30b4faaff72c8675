// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
//
// Zero values are legal here: Normalize() fills them afterwards.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil configuration")
	}

	if cfg.Repatcher.Device.BaudRate < 0 {
		return fmt.Errorf(
			"config: baud_rate must be positive, got %d",
			cfg.Repatcher.Device.BaudRate,
		)
	}

	if p := cfg.Repatcher.OSC.Port; p < 0 || p > 65535 {
		return fmt.Errorf("config: osc port %d out of range", p)
	}

	return nil
}
