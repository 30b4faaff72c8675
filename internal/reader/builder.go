// internal/reader/builder.go
package reader

import (
	"github.com/rs/zerolog"

	cfg "github.com/daveseidel/repatcher-osc/internal/config"
	rserial "github.com/daveseidel/repatcher-osc/internal/reader/serial"
)

// Build constructs a Reader and wires the serial transport lifecycle.
// The port is opened here (fail fast at startup) and the returned
// closer releases it.
func Build(dev cfg.DeviceConfig, sink Sink, log zerolog.Logger) (*Reader, func() error, error) {
	port, err := rserial.Open(rserial.Config{
		Path:     dev.Port,
		BaudRate: dev.BaudRate,
	})
	if err != nil {
		return nil, nil, err
	}

	r, err := New(port, sink, log)
	if err != nil {
		port.Close()
		return nil, nil, err
	}

	return r, port.Close, nil
}
