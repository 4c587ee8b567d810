package console

import (
	"context"

	"github.com/jdjurisic/vgacons/internal/keys"
)

// Read copies up to len(dst) published bytes from the line buffer. It
// blocks while no published data exists, releasing the console lock for
// the duration and re-checking on every wake. Cancellation of ctx while
// blocked aborts with ErrInterrupted.
//
// Copying stops at a newline (consumed and included) or at the
// end-of-input marker: when bytes were already copied the marker is pushed
// back so the next call returns 0 bytes; a marker read first thing is
// consumed and yields the 0-byte result directly. A 0-byte return with a
// nil error is therefore meaningful, not a timeout.
func (c *Console) Read(ctx context.Context, dst []byte) (int, error) {
	if c.halted.Load() {
		return 0, ErrHalted
	}

	// Wake the wait loop when the caller is cancelled.
	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		c.notEmpty.Broadcast()
		c.mu.Unlock()
	})
	defer stop()

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for n < len(dst) {
		for c.input.Empty() {
			if ctx.Err() != nil {
				return 0, ErrInterrupted
			}
			if c.halted.Load() {
				return 0, ErrHalted
			}
			c.notEmpty.Wait()
		}

		ch := c.input.Pop()
		if ch == keys.CtrlD {
			if n > 0 {
				// Hold the marker for the next call so the caller still
				// gets its 0-byte result.
				c.input.Unpop()
			}
			break
		}
		dst[n] = ch
		n++
		if ch == '\n' {
			break
		}
	}
	return n, nil
}
