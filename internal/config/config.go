// internal/config/config.go
package config

type Config struct {
	Repatcher RepatcherConfig `yaml:"repatcher"`
}

type RepatcherConfig struct {
	Device  DeviceConfig `yaml:"device"`
	OSC     OSCConfig    `yaml:"osc"`
	Verbose bool         `yaml:"verbose"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// ---- OSC DESTINATION ----

type OSCConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}
