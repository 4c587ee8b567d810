// Package term renders the emulated VGA text surface into a real terminal
// with tcell and translates terminal key events into console keycodes.
// It plays the role of the display and keyboard controllers.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/jdjurisic/vgacons/internal/palette"
	"github.com/jdjurisic/vgacons/internal/vga"
)

// Screen adapts a tcell.Screen to the vga.Surface contract. Cell writes
// land in an in-memory mirror and are pushed to the terminal on Flush;
// the console produces bursts of single-cell writes (full repaints,
// overlay redraws) that would be wasteful to sync one at a time.
type Screen struct {
	mu       sync.Mutex
	ts       tcell.Screen
	mem      *vga.Memory
	dirty    [vga.Cells]bool
	allDirty bool
}

// New creates a Screen on a fresh tcell terminal screen.
func New() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWith(ts), nil
}

// NewWith wraps an existing tcell screen; tests pass a simulation screen.
func NewWith(ts tcell.Screen) *Screen {
	return &Screen{
		ts:       ts,
		mem:      vga.NewMemory(),
		allDirty: true,
	}
}

// Init initializes the underlying terminal.
func (s *Screen) Init() error {
	if err := s.ts.Init(); err != nil {
		return err
	}
	s.ts.HideCursor()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.ts.Fini()
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.ts.PollEvent()
}

// WriteCell stores a character and attribute at pos.
func (s *Screen) WriteCell(pos int, ch byte, attr vga.Attr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem.WriteCell(pos, ch, attr)
	if pos >= 0 && pos < vga.Cells {
		s.dirty[pos] = true
	}
}

// ReadCell returns the character and attribute at pos.
func (s *Screen) ReadCell(pos int) (byte, vga.Attr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.ReadCell(pos)
}

// Cursor returns the cursor index.
func (s *Screen) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Cursor()
}

// SetCursor moves the cursor.
func (s *Screen) SetCursor(pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem.SetCursor(pos)
}

// ScrollUp shifts rows up one and clears from clearFrom; every cell may
// have moved, so the whole surface is repushed on the next Flush.
func (s *Screen) ScrollUp(clearFrom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem.ScrollUp(clearFrom)
	s.allDirty = true
}

// Flush pushes pending cell changes and the cursor to the terminal.
func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for pos := 0; pos < vga.Cells; pos++ {
		if !s.allDirty && !s.dirty[pos] {
			continue
		}
		s.dirty[pos] = false
		ch, attr := s.mem.ReadCell(pos)
		s.ts.SetContent(pos%vga.Columns, pos/vga.Columns, cellRune(ch), nil, styleFor(attr))
	}
	s.allDirty = false

	cursor := s.mem.Cursor()
	if cursor >= 0 && cursor < vga.Cells {
		s.ts.ShowCursor(cursor%vga.Columns, cursor/vga.Columns)
	} else {
		s.ts.HideCursor()
	}
	s.ts.Show()
}

// Sync forces a full terminal redraw, after a resize.
func (s *Screen) Sync() {
	s.mu.Lock()
	s.allDirty = true
	s.mu.Unlock()
	s.Flush()
	s.ts.Sync()
}

// cellRune maps a VGA cell byte to a displayable rune. Cleared cells and
// non-printable bytes show as blanks.
func cellRune(ch byte) rune {
	if ch < 0x20 || ch > 0x7e {
		return ' '
	}
	return rune(ch)
}

// styleFor converts a VGA attribute word to a tcell style using the
// canonical palette RGB values.
func styleFor(attr vga.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(attr.Fg())).
		Background(tcellColor(attr.Bg()))
}

func tcellColor(code uint8) tcell.Color {
	r, g, b := palette.RGB(code).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
