// internal/scale/scale.go
package scale

import "errors"

// Scaler maps a value in a source range onto a destination range.
// The mapping is affine and never clamps: out-of-range input
// extrapolates linearly.
type Scaler struct {
	srcBeg float64
	dstBeg float64
	srcRng float64
	dstRng float64
}

// New creates a scaler with immutable ranges.
// A zero-width source range is rejected here so it can never divide
// by zero per sample.
func New(srcBeg, srcEnd, dstBeg, dstEnd float64) (*Scaler, error) {
	if srcEnd == srcBeg {
		return nil, errors.New("scale: zero-width source range")
	}
	return &Scaler{
		srcBeg: srcBeg,
		dstBeg: dstBeg,
		srcRng: srcEnd - srcBeg,
		dstRng: dstEnd - dstBeg,
	}, nil
}

// Scale maps v from the source range to the destination range.
func (s *Scaler) Scale(v float64) float64 {
	return ((v-s.srcBeg)/s.srcRng)*s.dstRng + s.dstBeg
}
