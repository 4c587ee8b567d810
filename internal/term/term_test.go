package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jdjurisic/vgacons/internal/vga"
)

func newSimScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWith(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	return s
}

func TestScreenImplementsSurface(t *testing.T) {
	var _ vga.Surface = (*Screen)(nil)
}

func TestScreenRoundTrip(t *testing.T) {
	s := newSimScreen(t)

	s.WriteCell(5, 'Q', 0x1700)
	ch, attr := s.ReadCell(5)
	if ch != 'Q' || attr != 0x1700 {
		t.Errorf("ReadCell = %q, %#x", ch, uint16(attr))
	}

	s.SetCursor(5)
	if s.Cursor() != 5 {
		t.Errorf("Cursor = %d", s.Cursor())
	}
}

func TestFlushPushesCells(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWith(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Fini()
	sim.SetSize(vga.Columns, vga.Rows)

	s.WriteCell(vga.Columns+2, 'Z', vga.AttrDefault)
	s.Flush()

	mainc, _, _, _ := sim.GetContent(2, 1)
	if mainc != 'Z' {
		t.Errorf("terminal cell = %q, want 'Z'", mainc)
	}
}

func TestScrollMarksEverythingDirty(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWith(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Fini()
	sim.SetSize(vga.Columns, vga.Rows)

	s.WriteCell(vga.Columns, 'M', vga.AttrDefault)
	s.Flush()

	// The shifted copy of the cell must reach the terminal even though
	// row 0 was never written directly.
	s.ScrollUp((vga.ScrollRow - 1) * vga.Columns)
	s.Flush()

	mainc, _, _, _ := sim.GetContent(0, 0)
	if mainc != 'M' {
		t.Errorf("terminal cell after scroll = %q, want 'M'", mainc)
	}
}

func TestCellRune(t *testing.T) {
	if cellRune(0) != ' ' || cellRune(0x1f) != ' ' || cellRune(0x7f) != ' ' {
		t.Error("non-printable bytes should render as blanks")
	}
	if cellRune('x') != 'x' {
		t.Error("printable bytes should render as themselves")
	}
}
