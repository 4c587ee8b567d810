package vga

// Rect addresses a rectangular region of a flat cell grid by origin index,
// row stride, and extent. It replaces the manual stride arithmetic that
// frame drawing, selection highlighting, and backup/restore would otherwise
// each repeat.
type Rect struct {
	Origin int // flat index of the top-left cell
	Stride int // cells per grid row (usually Columns)
	Cols   int // region width in cells
	Rows   int // region height in rows
}

// Cells returns the number of cells the rectangle covers.
func (r Rect) Cells() int {
	return r.Cols * r.Rows
}

// Index returns the flat grid index of the i-th cell of the region in
// row-major order. i must be in [0, Cells()).
func (r Rect) Index(i int) int {
	return r.Origin + (i/r.Cols)*r.Stride + i%r.Cols
}

// Row returns a single-row rectangle covering row n of the region.
func (r Rect) Row(n int) Rect {
	return Rect{
		Origin: r.Origin + n*r.Stride,
		Stride: r.Stride,
		Cols:   r.Cols,
		Rows:   1,
	}
}
