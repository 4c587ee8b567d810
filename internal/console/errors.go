package console

import "errors"

// Console errors.
var (
	// ErrInterrupted indicates a blocked read was cancelled before a full
	// line arrived.
	ErrInterrupted = errors.New("console: read interrupted")

	// ErrHalted indicates the console hit a fatal condition and accepts no
	// further work.
	ErrHalted = errors.New("console: halted")
)
