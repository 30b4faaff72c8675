// internal/frame/types.go
package frame

// Knob is one decoded knob reading.
type Knob struct {
	ID    int
	Value float64 // nominally 0..1; out-of-domain raw words extrapolate
}

// Connections holds one patch-bay row, most significant input bit first.
type Connections [InputsPerOutput]bool

// PatchRow is one decoded patch-bay output row.
type PatchRow struct {
	Output      int
	Connections Connections
}

// Snapshot is everything one frame reports, stored in emit order:
// knob 5 down to knob 0, then output 5 down to output 0.
// Downstream consumers rely on this ordering per frame.
type Snapshot struct {
	Knobs [KnobCount]Knob
	Rows  [OutputCount]PatchRow
}
