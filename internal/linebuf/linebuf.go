// Package linebuf implements the console line discipline: a fixed-capacity
// ring buffer where raw keystrokes become visible to readers only a full
// line at a time.
//
// Three logically unbounded counters index the ring: read (next byte a
// reader consumes), consume (end of published data), and edit (next free
// edit position). The invariant read <= consume <= edit <= read+Capacity
// holds after every operation. Bytes in [read, consume) form completed
// lines; bytes in [consume, edit) are still being edited.
//
// The buffer is not self-synchronizing; the console lock guards it.
package linebuf

import "github.com/jdjurisic/vgacons/internal/keys"

// Capacity is the ring size in bytes and the maximum unread backlog.
const Capacity = 128

// Buffer is the line-discipline ring. The zero value is ready to use and
// lives for the life of the console.
type Buffer struct {
	buf     [Capacity]byte
	read    uint
	consume uint
	edit    uint
}

// AppendEdit appends a byte to the edit region. When the byte is a newline
// or the end-of-input marker, or the buffer becomes exactly full, the edit
// region is published to readers and AppendEdit reports true so the caller
// can wake them. A full buffer drops the byte silently.
func (b *Buffer) AppendEdit(c byte) (published bool) {
	if b.Full() {
		return false
	}
	b.buf[b.edit%Capacity] = c
	b.edit++
	if c == '\n' || c == keys.CtrlD || b.edit == b.read+Capacity {
		b.consume = b.edit
		return true
	}
	return false
}

// KillLine discards the unpublished line being edited and returns the
// number of bytes removed, so the caller can erase them from the screen.
// Published data is never touched.
func (b *Buffer) KillLine() int {
	n := 0
	for b.edit != b.consume && b.buf[(b.edit-1)%Capacity] != '\n' {
		b.edit--
		n++
	}
	return n
}

// Backspace removes the last edit byte. It reports false when the edit
// region is empty.
func (b *Buffer) Backspace() bool {
	if b.edit == b.consume {
		return false
	}
	b.edit--
	return true
}

// Empty reports whether no published bytes remain for readers.
func (b *Buffer) Empty() bool {
	return b.read == b.consume
}

// Full reports whether the ring holds Capacity bytes between the read and
// edit positions.
func (b *Buffer) Full() bool {
	return b.edit-b.read >= Capacity
}

// Pop consumes and returns the next published byte. The caller must check
// Empty first.
func (b *Buffer) Pop() byte {
	c := b.buf[b.read%Capacity]
	b.read++
	return c
}

// Unpop pushes the most recently popped byte back, so the next read sees
// it again. Used to hold the end-of-input marker for a 0-byte follow-up
// read.
func (b *Buffer) Unpop() {
	b.read--
}

// invariant reports whether the counter ordering holds. Test helper.
func (b *Buffer) invariant() bool {
	return b.read <= b.consume && b.consume <= b.edit && b.edit <= b.read+Capacity
}
