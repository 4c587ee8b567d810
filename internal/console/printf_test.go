package console

import (
	"testing"

	"github.com/jdjurisic/vgacons/internal/vga"
)

func printfOutput(t *testing.T, format string, args ...any) string {
	t.Helper()
	sink := &captureSink{}
	c := New(vga.NewMemory(), WithSerial(sink))
	c.Printf(format, args...)
	return sink.String()
}

func TestPrintfVerbs(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"decimal", "%d", []any{42}, "42"},
		{"negative decimal", "%d", []any{-42}, "-42"},
		{"zero", "%d", []any{0}, "0"},
		{"hex", "%x", []any{255}, "ff"},
		{"pointer hex", "%p", []any{uintptr(0xdeadbeef)}, "deadbeef"},
		{"string", "%s", []any{"hi"}, "hi"},
		{"byte slice", "%s", []any{[]byte("raw")}, "raw"},
		{"nil string", "%s", []any{nil}, "(null)"},
		{"missing argument", "%s and %d", nil, "(null) and 0"},
		{"percent literal", "100%%", nil, "100%"},
		{"unknown verb echoed", "%q", nil, "%q"},
		{"mixed", "pid %d at %x: %s", []any{7, 0x80, "trap"}, "pid 7 at 80: trap"},
		{"trailing percent dropped", "end%", nil, "end"},
		{"unsigned", "%d", []any{uint64(18446744073709551615)}, "18446744073709551615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := printfOutput(t, tt.format, tt.args...); got != tt.want {
				t.Errorf("Printf(%q, %v) = %q, want %q", tt.format, tt.args, got, tt.want)
			}
		})
	}
}

func TestPrintfRendersOnSurface(t *testing.T) {
	mem := vga.NewMemory()
	c := New(mem)
	c.Printf("boot %d", 1)

	want := "boot 1"
	for i := 0; i < len(want); i++ {
		if ch, _ := mem.ReadCell(i); ch != want[i] {
			t.Fatalf("cell %d = %q, want %q", i, ch, want[i])
		}
	}
}
