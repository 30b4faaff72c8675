// internal/osc/sender.go
package osc

import (
	"errors"
	"fmt"

	gosc "github.com/hypebeast/go-osc/osc"
	"github.com/rs/zerolog"

	"github.com/daveseidel/repatcher-osc/internal/frame"
)

// OSC address prefixes; the knob/output number is appended.
const (
	KnobAddressPrefix   = "/repatcher/knob"
	OutputAddressPrefix = "/repatcher/output"
)

// Config is the OSC destination.
type Config struct {
	Address string
	Port    int
	Verbose bool
}

// Sender publishes decoded events as addressed OSC messages over UDP.
// Transmission is fire-and-forget: no acknowledgment, no retry.
//
// Implements reader.Sink.
type Sender struct {
	client  *gosc.Client
	log     zerolog.Logger
	verbose bool
}

// New creates a sender for the given destination.
func New(cfg Config, log zerolog.Logger) (*Sender, error) {
	if cfg.Address == "" {
		return nil, errors.New("osc: destination address required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("osc: destination port %d out of range", cfg.Port)
	}

	return &Sender{
		client:  gosc.NewClient(cfg.Address, cfg.Port),
		log:     log,
		verbose: cfg.Verbose,
	}, nil
}

// SendKnob publishes one knob value as a single float argument.
func (s *Sender) SendKnob(knob int, value float64) error {
	if s.verbose {
		s.log.Info().Int("knob", knob).Float64("value", value).Msg("knob")
	}

	msg := gosc.NewMessage(knobAddress(knob))
	msg.Append(float32(value)) // OSC floats are 32-bit
	return s.client.Send(msg)
}

// SendPatchBay publishes one output row as six 0/1 integer arguments
// in connection order.
func (s *Sender) SendPatchBay(output int, connections frame.Connections) error {
	if s.verbose {
		s.log.Info().Int("output", output).Interface("connections", connections).Msg("patch bay")
	}

	msg := gosc.NewMessage(outputAddress(output))
	for _, on := range connections {
		msg.Append(connFlag(on))
	}
	return s.client.Send(msg)
}

func knobAddress(n int) string {
	return fmt.Sprintf("%s%d", KnobAddressPrefix, n)
}

func outputAddress(n int) string {
	return fmt.Sprintf("%s%d", OutputAddressPrefix, n)
}

// connFlag maps a connection bit to the 0/1 integer the wire contract uses.
func connFlag(on bool) int32 {
	if on {
		return 1
	}
	return 0
}
