// internal/reader/reader.go
package reader

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/daveseidel/repatcher-osc/internal/frame"
)

// Transport abstracts the serial byte stream the reader consumes.
// The reader depends on blocking exact reads only.
type Transport interface {
	// ReadFull blocks until len(p) bytes arrive or the stream fails.
	ReadFull(p []byte) error
	// DiscardInput drops bytes queued but not yet delivered.
	DiscardInput() error
}

// Sink receives decoded events, one call per knob and per output row.
// A slow sink stalls frame intake; that coupling is intentional.
type Sink interface {
	SendKnob(knob int, value float64) error
	SendPatchBay(output int, connections frame.Connections) error
}

// Reader synchronizes on the device stream and drives decode + dispatch.
// It owns the transport exclusively.
type Reader struct {
	tr   Transport
	sink Sink
	dec  *frame.Decoder
	log  zerolog.Logger
}

// New creates a reader with explicit collaborators. No singletons.
func New(tr Transport, sink Sink, log zerolog.Logger) (*Reader, error) {
	if tr == nil {
		return nil, errors.New("reader: transport required")
	}
	if sink == nil {
		return nil, errors.New("reader: sink required")
	}

	dec, err := frame.NewDecoder()
	if err != nil {
		return nil, err
	}

	return &Reader{tr: tr, sink: sink, dec: dec, log: log}, nil
}

// ReadFrame seeks the next marker byte, reads one frame body, discards
// any stale queued input, and dispatches the decoded events.
//
// A marker value occurring inside a frame body is indistinguishable
// from a true frame start; the protocol has no escaping and none is
// added here.
//
// Any transport failure is fatal and returned: decoding needs exactly
// the full body, so a short read must not be papered over.
func (r *Reader) ReadFrame() error {
	var b [1]byte
	for {
		if err := r.tr.ReadFull(b[:]); err != nil {
			return fmt.Errorf("reader: marker scan: %w", err)
		}
		if b[0] == frame.Marker {
			break
		}
	}

	body := make([]byte, frame.BodyLen)
	if err := r.tr.ReadFull(body); err != nil {
		return fmt.Errorf("reader: frame body: %w", err)
	}

	// Bound staleness: if the consumer fell behind the device, anything
	// still queued is older than the frame just read.
	if err := r.tr.DiscardInput(); err != nil {
		return fmt.Errorf("reader: discard queued input: %w", err)
	}

	snap, err := r.dec.Decode(body)
	if err != nil {
		return err
	}

	r.dispatch(snap)
	return nil
}

// dispatch emits all twelve events in snapshot order.
// Sink failures are logged, not fatal: the outbound side is
// fire-and-forget and must not tear down the device link.
func (r *Reader) dispatch(snap frame.Snapshot) {
	for _, k := range snap.Knobs {
		if err := r.sink.SendKnob(k.ID, k.Value); err != nil {
			r.log.Warn().Err(err).Int("knob", k.ID).Msg("knob send failed")
		}
	}
	for _, row := range snap.Rows {
		if err := r.sink.SendPatchBay(row.Output, row.Connections); err != nil {
			r.log.Warn().Err(err).Int("output", row.Output).Msg("patch bay send failed")
		}
	}
}
