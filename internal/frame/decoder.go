// internal/frame/decoder.go
package frame

import (
	"fmt"

	"github.com/daveseidel/repatcher-osc/internal/scale"
)

// Decoder turns one raw frame body into a Snapshot.
// Decoding is pure: the same body always yields the same snapshot.
type Decoder struct {
	scale *scale.Scaler
}

// NewDecoder builds a decoder with the fixed knob scaling range.
func NewDecoder() (*Decoder, error) {
	s, err := scale.New(0, KnobRawSpan, 0, 1)
	if err != nil {
		return nil, err
	}
	return &Decoder{scale: s}, nil
}

// connMasks select patch-bay inputs, most significant of the six bits first.
var connMasks = [InputsPerOutput]byte{32, 16, 8, 4, 2, 1}

// Decode interprets an 18-byte frame body.
// Ids are reverse-indexed: the lowest byte offsets carry the
// highest-numbered knob and output.
func (d *Decoder) Decode(body []byte) (Snapshot, error) {
	if len(body) != BodyLen {
		return Snapshot{}, fmt.Errorf("frame: body length %d, want %d", len(body), BodyLen)
	}

	var snap Snapshot

	// Knob words: two bytes each, low byte first, high byte carries 7 bits.
	// The top bit of each byte is reserved by the serial framing.
	for i := 0; i < 2*KnobCount; i += 2 {
		raw := int(body[i+1])<<7 | int(body[i])
		snap.Knobs[i/2] = Knob{
			ID:    KnobCount - 1 - i/2,
			Value: d.scale.Scale(float64(raw)),
		}
	}

	// Patch-bay rows: one bit-packed byte per output.
	for i := patchBase; i < patchBase+OutputCount; i++ {
		row := PatchRow{Output: OutputCount - 1 - (i - patchBase)}
		for j, mask := range connMasks {
			row.Connections[j] = body[i]&mask == mask
		}
		snap.Rows[i-patchBase] = row
	}

	return snap, nil
}
