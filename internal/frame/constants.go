// internal/frame/constants.go
package frame

// rePatcher wire protocol constants.
// These values define the protocol and MUST NOT be configurable.

// ---- FRAMING ----

// Marker is the single byte value that delimits the start of every frame.
// It is not part of the frame body.
const Marker byte = 0xC0

// BodyLen is the number of bytes following the marker in one frame.
const BodyLen = 18

// ---- KNOBS ----

// KnobCount is the number of analog knobs on the device.
const KnobCount = 6

// KnobRawSpan is the source span of a raw knob word for scaling.
// Raw words are nominally 0..1023; the scaler maps 0..1024 onto 0..1.
const KnobRawSpan = 1024.0

// ---- PATCH BAY ----

// OutputCount is the number of patch-bay outputs.
const OutputCount = 6

// InputsPerOutput is the number of patchable inputs per output row.
const InputsPerOutput = 6

// patchBase is the byte offset of the first patch-bay row in the body.
// Bytes 0..11 carry the six knob words, 12..17 the six row bytes.
const patchBase = 12
