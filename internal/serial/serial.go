// Package serial provides the secondary output sink the console mirrors
// every character to, in the manner of a kernel UART.
package serial

import "io"

// Sink receives console output one byte at a time. Implementations must
// not block for long; the console holds its lock while mirroring.
type Sink interface {
	Putc(c byte)
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Putc(byte) {}

// Writer adapts an io.Writer into a Sink. Write errors are dropped, as a
// UART would drop bytes with no one listening.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as a byte-at-a-time sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Putc writes one byte.
func (s *Writer) Putc(c byte) {
	_, _ = s.w.Write([]byte{c})
}
