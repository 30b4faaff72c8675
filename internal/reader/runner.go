// internal/reader/runner.go
package reader

import (
	"context"
)

// Run drives the frame loop until ctx is cancelled or the transport
// fails. Cancellation is observed between frames only, since mid-read
// cancellation of a blocking transport read is not safe; shutdown
// latency is at most one frame.
func (r *Reader) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := r.ReadFrame(); err != nil {
			return err
		}
	}
}
