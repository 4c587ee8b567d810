package vga

// Display geometry. The console scrolls when output reaches ScrollRow,
// keeping the bottom row free for the cursor cell.
const (
	Columns   = 80
	Rows      = 25
	ScrollRow = 24
	Cells     = Columns * Rows
)

// Surface is the contract the console core needs from text-mode display
// hardware. Positions are flat indices, row*Columns+col, in [0, Cells).
//
// Implementations do not validate cursor sanity; the console treats a
// cursor index outside [0, Cells] as fatal corruption.
type Surface interface {
	// WriteCell stores a character and attribute at pos. Out-of-range
	// positions are ignored.
	WriteCell(pos int, ch byte, attr Attr)

	// ReadCell returns the character and attribute at pos. Out-of-range
	// positions read as zero.
	ReadCell(pos int) (byte, Attr)

	// Cursor returns the hardware cursor index.
	Cursor() int

	// SetCursor moves the hardware cursor.
	SetCursor(pos int)

	// ScrollUp shifts rows 1 through ScrollRow-1 up by one row and zeroes
	// every cell from clearFrom to the end of row ScrollRow-1. The caller
	// adjusts the cursor and repaints the vacated row if the current
	// attribute differs from the default.
	ScrollUp(clearFrom int)
}

// Memory is an in-memory Surface. It backs tests and is embedded by the
// terminal adapter as the authoritative cell state.
type Memory struct {
	cells  [Cells]Cell
	cursor int
}

// NewMemory returns a zeroed in-memory surface with the cursor at 0.
func NewMemory() *Memory {
	return &Memory{}
}

// WriteCell stores a character and attribute at pos.
func (m *Memory) WriteCell(pos int, ch byte, attr Attr) {
	if pos < 0 || pos >= Cells {
		return
	}
	m.cells[pos] = Cell{Ch: ch, Attr: attr}
}

// ReadCell returns the character and attribute at pos.
func (m *Memory) ReadCell(pos int) (byte, Attr) {
	if pos < 0 || pos >= Cells {
		return 0, 0
	}
	c := m.cells[pos]
	return c.Ch, c.Attr
}

// Cursor returns the cursor index.
func (m *Memory) Cursor() int {
	return m.cursor
}

// SetCursor moves the cursor. The value is stored as given; sanity is the
// console's concern.
func (m *Memory) SetCursor(pos int) {
	m.cursor = pos
}

// ScrollUp shifts rows 1..ScrollRow-1 up one row and zeroes cells from
// clearFrom to the end of row ScrollRow-1.
func (m *Memory) ScrollUp(clearFrom int) {
	copy(m.cells[:(ScrollRow-1)*Columns], m.cells[Columns:ScrollRow*Columns])
	if clearFrom < 0 {
		clearFrom = 0
	}
	for i := clearFrom; i < ScrollRow*Columns; i++ {
		m.cells[i] = Cell{}
	}
}
