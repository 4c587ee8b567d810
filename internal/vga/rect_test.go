package vga

import "testing"

func TestRectIndex(t *testing.T) {
	r := Rect{Origin: 57, Stride: Columns, Cols: 23, Rows: 10}

	if got := r.Cells(); got != 230 {
		t.Fatalf("Cells() = %d, want 230", got)
	}
	if got := r.Index(0); got != 57 {
		t.Errorf("Index(0) = %d, want 57", got)
	}
	if got := r.Index(22); got != 79 {
		t.Errorf("Index(22) = %d, want 79", got)
	}
	if got := r.Index(23); got != 57+Columns {
		t.Errorf("Index(23) = %d, want %d", got, 57+Columns)
	}
	if got := r.Index(229); got != 57+9*Columns+22 {
		t.Errorf("Index(229) = %d, want %d", got, 57+9*Columns+22)
	}
}

func TestRectRow(t *testing.T) {
	r := Rect{Origin: 57, Stride: Columns, Cols: 23, Rows: 10}
	row := r.Row(3)
	if row.Origin != 57+3*Columns || row.Rows != 1 || row.Cols != 23 {
		t.Errorf("Row(3) = %+v", row)
	}
}
