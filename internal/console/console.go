package console

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/jdjurisic/vgacons/internal/keys"
	"github.com/jdjurisic/vgacons/internal/linebuf"
	"github.com/jdjurisic/vgacons/internal/menu"
	"github.com/jdjurisic/vgacons/internal/serial"
	"github.com/jdjurisic/vgacons/internal/vga"
)

// traceDepth is the number of caller frames the halt diagnostic prints.
const traceDepth = 10

// Console owns all console state. A single mutex serializes the line
// buffer counters, the menu and chord state, the current attribute, and
// every write to the text surface; readers block on notEmpty and release
// the lock while suspended.
type Console struct {
	mu       sync.Mutex
	notEmpty *sync.Cond

	surface vga.Surface
	serial  serial.Sink
	dump    func() // deferred Ctrl-P callback, runs without the lock

	input linebuf.Buffer
	menu  menu.Overlay
	chord ChordState
	attr  vga.Attr

	// locking is cleared on the halt path so the diagnostic can print
	// while the lock is already held. halting marks the diagnostic in
	// progress; halted is the one-way kill switch.
	locking atomic.Bool
	halting atomic.Bool
	halted  atomic.Bool
}

// Option configures a Console.
type Option func(*Console)

// WithSerial sets the secondary output sink every character is mirrored
// to. Defaults to serial.Discard.
func WithSerial(s serial.Sink) Option {
	return func(c *Console) {
		c.serial = s
	}
}

// WithDump sets the process-dump callback triggered by Ctrl-P. It runs
// after the console lock is released; it may call back into the console.
func WithDump(fn func()) Option {
	return func(c *Console) {
		c.dump = fn
	}
}

// WithAttr sets the initial output attribute.
func WithAttr(attr vga.Attr) Option {
	return func(c *Console) {
		c.attr = attr
	}
}

// New creates the console over a text surface.
func New(surface vga.Surface, opts ...Option) *Console {
	c := &Console{
		surface: surface,
		serial:  serial.Discard,
		attr:    vga.AttrDefault,
	}
	c.notEmpty = sync.NewCond(&c.mu)
	for _, opt := range opts {
		opt(c)
	}
	c.locking.Store(true)
	return c
}

// Attr returns the current output attribute.
func (c *Console) Attr() vga.Attr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attr
}

// SetAttr replaces the output attribute and repaints the whole surface
// with it, characters preserved. Used when a new color pair arrives from
// configuration rather than the menu.
func (c *Console) SetAttr(attr vga.Attr) {
	if c.halted.Load() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attr = attr
	for pos := 0; pos < vga.Cells; pos++ {
		ch, _ := c.surface.ReadCell(pos)
		c.surface.WriteCell(pos, ch, attr)
	}
}

// Halted reports whether the console hit a fatal condition.
func (c *Console) Halted() bool {
	return c.halted.Load()
}

// Write sends bytes through the output formatter. It serializes with the
// input path on the console lock but never blocks on input state. A fatal
// condition mid-batch stops the write; the count reports only the bytes
// rendered before the halt.
func (c *Console) Write(p []byte) (int, error) {
	if c.halted.Load() {
		return 0, ErrHalted
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, b := range p {
		c.putc(int(b))
		if c.halted.Load() {
			return n, ErrHalted
		}
		n++
	}
	return n, nil
}

// putc mirrors one character to the serial sink and renders it on the
// surface. The backspace sentinel becomes the three-byte erase sequence on
// the serial side. Callers hold the console lock (or have disabled
// locking on the halt path).
func (c *Console) putc(ch int) {
	if c.halted.Load() {
		return
	}
	if ch == keys.Backspace {
		c.serial.Putc('\b')
		c.serial.Putc(' ')
		c.serial.Putc('\b')
	} else {
		c.serial.Putc(byte(ch))
	}
	c.render(ch)
}

// render applies one character to the text surface: newline advances the
// cursor to the next row start, the backspace sentinel steps back one cell
// (a no-op at position 0), anything else is written with the current
// attribute. Output reaching the scroll row shifts the surface up; the
// vacated region is re-tinted when the attribute differs from the default,
// so no color seam appears. The cell under the new cursor is blanked.
func (c *Console) render(ch int) {
	pos := c.surface.Cursor()

	switch {
	case ch == '\n':
		pos += vga.Columns - pos%vga.Columns
	case ch == keys.Backspace:
		if pos > 0 {
			pos--
		}
	default:
		c.surface.WriteCell(pos, byte(ch), c.attr)
		pos++
	}

	if pos < 0 || pos > vga.Cells {
		// While the halt diagnostic is printing, a still-corrupt cursor
		// must not re-enter the halt path; the serial mirror already
		// carries the output.
		if !c.halting.Load() {
			c.fatal("cursor position out of range: %d", pos)
		}
		return
	}

	if pos/vga.Columns >= vga.ScrollRow {
		pos -= vga.Columns
		c.surface.ScrollUp(pos)
		if c.attr != vga.AttrDefault {
			c.repaintRow(vga.ScrollRow - 1)
		}
	}

	c.surface.SetCursor(pos)
	c.surface.WriteCell(pos, ' ', c.attr)
}

// repaintRow re-applies the current attribute to one row, characters
// preserved.
func (c *Console) repaintRow(row int) {
	r := vga.Rect{Origin: row * vga.Columns, Stride: vga.Columns, Cols: vga.Columns, Rows: 1}
	for i := 0; i < r.Cells(); i++ {
		pos := r.Index(i)
		ch, _ := c.surface.ReadCell(pos)
		c.surface.WriteCell(pos, ch, c.attr)
	}
}

// fatal prints a diagnostic plus a fixed-depth caller trace, then halts
// the console permanently. The output happens before the halt flag flips
// so the diagnostic itself still reaches the surface and the serial sink;
// locking is disabled first because fatal fires with the lock held.
// The transition is one-way: nothing un-halts a console.
func (c *Console) fatal(format string, args ...any) {
	if !c.halting.CompareAndSwap(false, true) {
		return
	}
	c.locking.Store(false)
	c.doPrintf("console panic: "+format+"\n", args...)

	var pcs [traceDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	for i := 0; i < n; i++ {
		c.doPrintf(" %p", uint64(pcs[i]))
	}
	c.doPrintf("\n")

	c.halted.Store(true)
	// Wake blocked readers so they observe the halt.
	c.notEmpty.Broadcast()
}
