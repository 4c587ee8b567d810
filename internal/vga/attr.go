package vga

// Attr is a VGA attribute word, kept pre-shifted into the high byte of a
// cell word the way the hardware stores it: foreground color nibble in
// bits 8-11, background color nibble in bits 12-15. The low byte is left
// free for the character.
type Attr uint16

const (
	// AttrDefault is light grey on black, the power-on attribute.
	AttrDefault Attr = 0x0700

	// BrightFg and BrightBg are the intensity bits for the two nibble
	// positions.
	BrightFg Attr = 0x0800
	BrightBg Attr = 0x8000

	fgMask Attr = 0x0f00
	bgMask Attr = 0xf000
)

// Fg returns the foreground color code (0-15, intensity bit included).
func (a Attr) Fg() uint8 {
	return uint8(a>>8) & 0x0f
}

// Bg returns the background color code (0-15, intensity bit included).
func (a Attr) Bg() uint8 {
	return uint8(a >> 12)
}

// WithFg replaces the foreground nibble with the foreground bits of code.
// The code must already be shifted into the foreground position, as the
// palette entries are.
func (a Attr) WithFg(code Attr) Attr {
	return (a &^ fgMask) | (code & fgMask)
}

// WithBg replaces the background nibble with the background bits of code.
func (a Attr) WithBg(code Attr) Attr {
	return (a &^ bgMask) | (code & bgMask)
}

// Cell is one character cell of the text surface.
type Cell struct {
	Ch   byte
	Attr Attr
}

// Word packs the cell into the 16-bit form the hardware buffer uses.
func (c Cell) Word() uint16 {
	return uint16(c.Ch) | uint16(c.Attr)
}
