package app

import "errors"

// Application errors.
var (
	// ErrQuit signals a normal user-requested exit.
	ErrQuit = errors.New("app: quit")
)
