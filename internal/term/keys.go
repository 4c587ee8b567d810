package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jdjurisic/vgacons/internal/keys"
)

// TranslateKey converts a tcell key event into a console keycode. It
// reports false for keys the console has no encoding for; the console is
// a single-byte device, so wide and non-ASCII runes are rejected at the
// boundary rather than mangled further in.
func TranslateKey(ev *tcell.EventKey) (int, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r < 0x20 || r > 0x7e || runewidth.RuneWidth(r) != 1 {
			return 0, false
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return keys.Alt(unicode.ToLower(r)), true
		}
		return int(r), true

	case tcell.KeyEnter:
		return '\r', true

	case tcell.KeyTab:
		return '\t', true

	case tcell.KeyBackspace:
		return keys.CtrlH, true
	}

	// tcell gives Ctrl-letter combinations dedicated key values offset
	// from KeyCtrlSpace; fold them back to the 1-26 control codes the
	// console dispatcher routes on.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return int(k - tcell.KeyCtrlSpace), true
	}
	return 0, false
}
