// internal/reader/serial/port.go
package serial

import (
	"errors"
	"fmt"
	"io"

	goserial "go.bug.st/serial"
)

// Config is minimal transport config.
type Config struct {
	Path     string
	BaudRate int
}

// Port implements reader.Transport over a physical serial port.
type Port struct {
	p goserial.Port
}

// Open opens the device in 8N1 mode with blocking reads.
func Open(cfg Config) (*Port, error) {
	if cfg.Path == "" {
		return nil, errors.New("serial: device path required")
	}
	if cfg.BaudRate <= 0 {
		return nil, errors.New("serial: baud rate required")
	}

	p, err := goserial.Open(cfg.Path, &goserial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   goserial.NoParity,
		StopBits: goserial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Path, err)
	}

	return &Port{p: p}, nil
}

// ---- reader.Transport ----

func (p *Port) ReadFull(buf []byte) error {
	_, err := io.ReadFull(p.p, buf)
	return err
}

func (p *Port) DiscardInput() error {
	return p.p.ResetInputBuffer()
}

// Close closes the device.
func (p *Port) Close() error {
	return p.p.Close()
}
