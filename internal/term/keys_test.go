package term

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jdjurisic/vgacons/internal/console"
	"github.com/jdjurisic/vgacons/internal/keys"
	"github.com/jdjurisic/vgacons/internal/vga"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want int
		ok   bool
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), 'a', true},
		{"uppercase rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), 'A', true},
		{"alt rune lowered", tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModAlt), keys.AltC, true},
		{"alt-o", tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModAlt), keys.AltO, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), '\r', true},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), '\t', true},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), keys.CtrlH, true},
		// NewEventKey folds KeyBackspace2 into KeyBackspace.
		{"del folds to backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), keys.CtrlH, true},
		{"ctrl-u", tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), keys.CtrlU, true},
		{"ctrl-p", tcell.NewEventKey(tcell.KeyCtrlP, 0, tcell.ModCtrl), keys.CtrlP, true},
		{"ctrl-d", tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl), keys.CtrlD, true},
		{"ctrl-q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), keys.Ctrl('q'), true},
		{"non-ascii rejected", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), 0, false},
		{"wide rune rejected", tcell.NewEventKey(tcell.KeyRune, '語', tcell.ModNone), 0, false},
		{"function key rejected", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), 0, false},
		{"escape rejected", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateKey(tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("TranslateKey = %#x, %v; want %#x, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

// Translated control keys must land on the dispatcher's control codes, or
// line editing silently types letters instead.
func TestTranslatedControlKeysDriveLineEditing(t *testing.T) {
	cons := console.New(vga.NewMemory())

	press := func(ev *tcell.EventKey) {
		t.Helper()
		code, ok := TranslateKey(ev)
		if !ok {
			t.Fatalf("TranslateKey rejected %v", ev)
		}
		delivered := false
		cons.Intr(func() int {
			if delivered {
				return keys.None
			}
			delivered = true
			return code
		})
	}

	press(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	press(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone))
	press(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl))
	press(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	press(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	buf := make([]byte, 16)
	n, err := cons.Read(context.Background(), buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := string(buf[:n]); got != "c\n" {
		t.Errorf("line after kill = %q, want %q", got, "c\n")
	}
}
