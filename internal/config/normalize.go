// internal/config/normalize.go
package config

// Stock rePatcher defaults.
const (
	DefaultDevicePort = "/dev/ttyACM0"
	DefaultBaudRate   = 38400
	DefaultOSCAddress = "127.0.0.1"
	DefaultOSCPort    = 12000
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Repatcher.Device
	if d.Port == "" {
		d.Port = DefaultDevicePort
	}
	if d.BaudRate == 0 {
		d.BaudRate = DefaultBaudRate
	}

	o := &cfg.Repatcher.OSC
	if o.Address == "" {
		o.Address = DefaultOSCAddress
	}
	if o.Port == 0 {
		o.Port = DefaultOSCPort
	}
}
