package console

import "github.com/jdjurisic/vgacons/internal/keys"

// Intr is the interrupt entry point. It acquires the console lock once,
// drains every pending keycode from getc, and routes each one: control
// sequences edit the line buffer, the alt chord drives the menu toggle,
// menu-mode keys go to the overlay, and everything else lands in the line
// buffer and is echoed. getc returns a negative value (keys.None) when no
// key is pending.
//
// The process-dump callback is only armed here and invoked after the lock
// is released; the dump walks subsystems that must not be entered while
// the console lock is held.
func (c *Console) Intr(getc func() int) {
	if c.halted.Load() {
		return
	}

	dump := false
	c.mu.Lock()
	for ch := getc(); ch >= 0; ch = getc() {
		switch ch {
		case keys.CtrlP:
			dump = true
			c.chord = ChordNone

		case keys.CtrlU:
			for n := c.input.KillLine(); n > 0; n-- {
				c.putc(keys.Backspace)
			}
			c.chord = ChordNone

		case keys.CtrlH, keys.Delete:
			if !c.menu.Active() && c.input.Backspace() {
				c.putc(keys.Backspace)
			}
			c.chord = ChordNone

		case keys.AltC, keys.AltO, keys.AltL:
			var action ChordAction
			c.chord, action = c.chord.Next(ch)
			if action == ChordToggleMenu {
				c.toggleMenu()
			}

		default:
			if c.menu.Active() {
				c.menuKey(ch)
				break
			}
			if ch == 0 || c.input.Full() {
				break
			}
			c.chord = ChordNone
			if ch == '\r' {
				ch = '\n'
			}
			if c.input.AppendEdit(byte(ch)) {
				c.notEmpty.Broadcast()
			}
			c.putc(ch)
		}
	}
	c.mu.Unlock()

	if dump && c.dump != nil {
		c.dump()
	}
}

// toggleMenu opens the overlay, or closes it with the restored region
// re-tinted to the current attribute. Callers hold the console lock.
func (c *Console) toggleMenu() {
	if c.menu.Active() {
		c.menu.Close(c.surface, c.attr)
	} else {
		c.menu.Open(c.surface)
	}
}

// menuKey forwards a keystroke to the overlay while it owns input, then
// redraws the frame and the selection highlight. The full redraw is what
// erases the previous highlight; no previous selection is tracked. A
// non-zero key also clears any chord in progress.
func (c *Console) menuKey(ch int) {
	c.attr = c.menu.HandleKey(byte(ch), c.attr, c.surface)
	c.menu.DrawFrame(c.surface)
	c.menu.DrawSelection(c.surface)
	if ch != 0 {
		c.chord = ChordNone
	}
}
