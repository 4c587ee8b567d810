// Package menu implements the on-screen color picker: a fixed 23x10 frame
// drawn over the text surface, a selection cursor over 16 color cells
// (eight colors, foreground and background columns), and save/restore of
// the screen region the frame covers.
package menu

import (
	"fmt"
	"strings"

	"github.com/jdjurisic/vgacons/internal/palette"
	"github.com/jdjurisic/vgacons/internal/vga"
)

// Frame geometry. The frame sits at a fixed offset on the top rows of the
// surface, to the right of where boot output usually lands.
var frame = vga.Rect{Origin: 57, Stride: vga.Columns, Cols: 23, Rows: 10}

const (
	// frameAttr paints the frame text bright white on black.
	frameAttr vga.Attr = 0x0f00

	// selectionAttr marks the selected cell: black text on white.
	selectionAttr vga.Attr = 0xf000

	// nameWidth is the width of one color-name cell inside the frame.
	nameWidth = 10
)

// frameText is the frame rendered row-major as one string, frame.Cells()
// bytes long.
var frameText = buildFrameText()

func buildFrameText() string {
	var sb strings.Builder
	sb.WriteString(`/---<FG>--- ---<BG>---\`)
	for _, name := range palette.Names {
		fmt.Fprintf(&sb, "|%-*s|%-*s|", nameWidth, name, nameWidth, name)
	}
	sb.WriteString(`\---------------------/`)
	return sb.String()
}

// Overlay is the picker state machine. The zero value is an inactive menu
// with the selection on the first cell; the console lock guards it.
type Overlay struct {
	active    bool
	selection int
	backup    [230]byte
}

// Active reports whether the menu currently owns keyboard input.
func (o *Overlay) Active() bool {
	return o.active
}

// Selection returns the current cell index in [0, 16).
func (o *Overlay) Selection() int {
	return o.selection
}

// Open snapshots the characters under the frame and draws the picker.
// The selection carries over from the last time the menu was open.
func (o *Overlay) Open(s vga.Surface) {
	for i := 0; i < frame.Cells(); i++ {
		ch, _ := s.ReadCell(frame.Index(i))
		o.backup[i] = ch
	}
	o.active = true
	o.DrawFrame(s)
	o.DrawSelection(s)
}

// Close restores the snapshotted characters. The restored glyphs are
// re-tinted with attr, the attribute active now, not the one they had when
// the menu opened; the region always blends with the current scheme.
func (o *Overlay) Close(s vga.Surface, attr vga.Attr) {
	for i := 0; i < frame.Cells(); i++ {
		s.WriteCell(frame.Index(i), o.backup[i], attr)
	}
	o.active = false
}

// HandleKey processes one keystroke while the menu owns input and returns
// the possibly updated global attribute. s/w move the selection a row down
// or up, a/d swap between the foreground and background columns, e picks
// the color and r picks its bright variant. Picking repaints the whole
// surface with the new attribute. Unknown keys are ignored.
func (o *Overlay) HandleKey(c byte, attr vga.Attr, s vga.Surface) vga.Attr {
	switch c {
	case 's':
		o.selection = (o.selection + 2) % palette.Selections
	case 'w':
		o.selection = (o.selection - 2 + palette.Selections) % palette.Selections
	case 'a', 'd':
		o.selection ^= 1
	case 'e':
		attr = palette.Apply(attr, o.selection, false)
		repaint(s, attr)
	case 'r':
		attr = palette.Apply(attr, o.selection, true)
		repaint(s, attr)
	}
	return attr
}

// DrawFrame draws the full frame text. Redrawing everything also erases
// the previous selection highlight, so no previous-selection state is
// tracked.
func (o *Overlay) DrawFrame(s vga.Surface) {
	for i := 0; i < frame.Cells(); i++ {
		s.WriteCell(frame.Index(i), frameText[i], frameAttr)
	}
}

// DrawSelection forces the highlight attribute onto the name cell of the
// current selection, characters untouched.
func (o *Overlay) DrawSelection(s vga.Surface) {
	r := selectionRect(o.selection)
	for i := 0; i < r.Cells(); i++ {
		pos := r.Index(i)
		ch, _ := s.ReadCell(pos)
		s.WriteCell(pos, ch, selectionAttr)
	}
}

// selectionRect returns the name cell for a selection: column parity picks
// the foreground or background column, the row is selection/2.
func selectionRect(sel int) vga.Rect {
	origin := frame.Origin + frame.Stride + 1 // first name cell, FG column
	if sel%2 == 1 {
		origin += nameWidth + 1 // BG column
	}
	return vga.Rect{
		Origin: origin + (sel/2)*frame.Stride,
		Stride: frame.Stride,
		Cols:   nameWidth,
		Rows:   1,
	}
}

// repaint re-applies attr to every cell of the surface, characters
// preserved.
func repaint(s vga.Surface, attr vga.Attr) {
	for pos := 0; pos < vga.Cells; pos++ {
		ch, _ := s.ReadCell(pos)
		s.WriteCell(pos, ch, attr)
	}
}
