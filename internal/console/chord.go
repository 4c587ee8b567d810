package console

import "github.com/jdjurisic/vgacons/internal/keys"

// ChordState tracks progress through the Alt-C Alt-O Alt-L menu chord.
// Requiring the three alt keys in strict order keeps ordinary typing from
// toggling the menu by accident.
type ChordState uint8

const (
	// ChordNone means no chord is in progress.
	ChordNone ChordState = iota

	// ChordAltC means Alt-C was the last chord key seen.
	ChordAltC

	// ChordAltCO means Alt-C then Alt-O were seen; Alt-L completes.
	ChordAltCO
)

// String returns the state name for diagnostics.
func (s ChordState) String() string {
	switch s {
	case ChordNone:
		return "none"
	case ChordAltC:
		return "alt-c"
	case ChordAltCO:
		return "alt-c-o"
	default:
		return "unknown"
	}
}

// ChordAction is what a chord transition asks the dispatcher to do.
type ChordAction uint8

const (
	// ChordNoAction means only the state advanced.
	ChordNoAction ChordAction = iota

	// ChordToggleMenu means the chord completed: open or close the menu.
	ChordToggleMenu
)

// Next consumes one of the three chord keys and returns the new state and
// any action. Keys other than Alt-C, Alt-O, Alt-L leave the state alone;
// the dispatcher decides separately when they clear it.
//
// Two quirks are deliberate: Alt-C always restarts the chord from any
// state, while a second Alt-O breaks a completed prefix instead of keeping
// it, so Alt-C Alt-O Alt-O Alt-L does nothing.
func (s ChordState) Next(code int) (ChordState, ChordAction) {
	switch code {
	case keys.AltC:
		return ChordAltC, ChordNoAction
	case keys.AltO:
		if s == ChordAltC {
			return ChordAltCO, ChordNoAction
		}
		return ChordNone, ChordNoAction
	case keys.AltL:
		if s == ChordAltCO {
			return ChordNone, ChordToggleMenu
		}
		return ChordNone, ChordNoAction
	}
	return s, ChordNoAction
}
