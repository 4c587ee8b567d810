package vga

import "testing"

func TestMemoryWriteRead(t *testing.T) {
	m := NewMemory()

	m.WriteCell(10, 'x', 0x0200)
	ch, attr := m.ReadCell(10)
	if ch != 'x' || attr != 0x0200 {
		t.Errorf("ReadCell(10) = %q, %#x; want 'x', 0x0200", ch, uint16(attr))
	}

	// Out of range is a no-op / zero read.
	m.WriteCell(-1, 'y', 0x0200)
	m.WriteCell(Cells, 'y', 0x0200)
	if ch, attr := m.ReadCell(-1); ch != 0 || attr != 0 {
		t.Errorf("ReadCell(-1) = %q, %#x; want zero", ch, uint16(attr))
	}
}

func TestMemoryCursor(t *testing.T) {
	m := NewMemory()
	m.SetCursor(123)
	if got := m.Cursor(); got != 123 {
		t.Errorf("Cursor() = %d, want 123", got)
	}
}

func TestMemoryScrollUp(t *testing.T) {
	m := NewMemory()
	for row := 0; row < ScrollRow; row++ {
		m.WriteCell(row*Columns, byte('A'+row), AttrDefault)
	}

	// Scroll with the cursor at the start of the (former) last visible row.
	clearFrom := (ScrollRow - 1) * Columns
	m.ScrollUp(clearFrom)

	for row := 0; row < ScrollRow-1; row++ {
		ch, _ := m.ReadCell(row * Columns)
		if want := byte('A' + row + 1); ch != want {
			t.Errorf("row %d ch = %q, want %q", row, ch, want)
		}
	}
	for i := clearFrom; i < ScrollRow*Columns; i++ {
		if ch, attr := m.ReadCell(i); ch != 0 || attr != 0 {
			t.Fatalf("cell %d not cleared: %q, %#x", i, ch, uint16(attr))
		}
	}
}
