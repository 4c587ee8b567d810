// Package keys defines the console keycode space. Keycodes are ints in
// three planes: plain bytes 0-255 as delivered by the keyboard driver,
// control codes folded into 0-31, and an alt plane at 0x200|r for
// Alt-modified letters. 0x100 is reserved for the output-path backspace
// sentinel and is never produced by input.
package keys

// None is returned by drain functions when no key is pending; any negative
// value ends an interrupt batch.
const None = -1

// Backspace is the output-path erase sentinel: move the cursor back one
// cell and blank it. Kept outside the byte range so it cannot collide with
// typed input.
const Backspace = 0x100

const altPlane = 0x200

// Ctrl returns the control code for a letter, e.g. Ctrl('U').
func Ctrl(r rune) int {
	return int(r) & 0x1f
}

// Alt returns the alt-plane keycode for a rune, e.g. Alt('c').
func Alt(r rune) int {
	return altPlane | int(r)
}

// IsAlt reports whether code is in the alt plane.
func IsAlt(code int) bool {
	return code&altPlane != 0
}

// Control keys the dispatcher routes specially.
const (
	CtrlD = 'D' & 0x1f // end-of-input marker
	CtrlH = 'H' & 0x1f // backspace
	CtrlP = 'P' & 0x1f // process dump
	CtrlU = 'U' & 0x1f // kill line

	Delete = 0x7f // DEL, treated as backspace

	AltC = altPlane | 'c'
	AltO = altPlane | 'o'
	AltL = altPlane | 'l'
)
