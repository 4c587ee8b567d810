// Package palette holds the VGA color tables for the console: the 16
// picker selections (eight colors, each in a foreground and a background
// variant), their bright forms, display names for the picker frame, and
// the RGB values the terminal adapter renders them with.
package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jdjurisic/vgacons/internal/vga"
)

// Selections is the number of picker entries: eight colors times the
// foreground/background columns.
const Selections = 16

// Names lists the eight colors in table order. Even selections address the
// foreground column of a name, odd selections the background column.
var Names = [8]string{
	"Black", "Blue", "Green", "Aqua", "Red", "Purple", "Yellow", "White",
}

// table maps selections to attribute bits already shifted into the nibble
// the selection's column addresses.
var table = [Selections]vga.Attr{
	0x0000, 0x0000,
	0x0100, 0x1000,
	0x0200, 0x2000,
	0x0300, 0x3000,
	0x0400, 0x4000,
	0x0500, 0x5000,
	0x0600, 0x6000,
	0x0700, 0x7000,
}

// Entry returns the attribute bits for a selection. With bright set, the
// intensity bit for the selection's nibble position is added.
func Entry(sel int, bright bool) vga.Attr {
	a := table[sel&(Selections-1)]
	if bright {
		if sel%2 == 1 {
			a += vga.BrightBg
		} else {
			a += vga.BrightFg
		}
	}
	return a
}

// Apply merges the entry for sel into attr: odd selections replace the
// background nibble, even selections the foreground nibble.
func Apply(attr vga.Attr, sel int, bright bool) vga.Attr {
	if sel%2 == 1 {
		return attr.WithBg(Entry(sel, bright))
	}
	return attr.WithFg(Entry(sel, bright))
}

// Code returns the color code (0-7) for a color name, case-insensitive.
func Code(name string) (uint8, bool) {
	for i, n := range Names {
		if strings.EqualFold(n, name) {
			return uint8(i), true
		}
	}
	return 0, false
}

// rgb is the canonical VGA palette for the 16 color codes, bright variants
// in the upper half.
var rgb = [16]colorful.Color{
	mustHex("#000000"), // black
	mustHex("#0000aa"), // blue
	mustHex("#00aa00"), // green
	mustHex("#00aaaa"), // aqua
	mustHex("#aa0000"), // red
	mustHex("#aa00aa"), // purple
	mustHex("#aa5500"), // yellow (VGA brown)
	mustHex("#aaaaaa"), // white
	mustHex("#555555"),
	mustHex("#5555ff"),
	mustHex("#55ff55"),
	mustHex("#55ffff"),
	mustHex("#ff5555"),
	mustHex("#ff55ff"),
	mustHex("#ffff55"),
	mustHex("#ffffff"),
}

// RGB returns the display color for a 4-bit color code.
func RGB(code uint8) colorful.Color {
	return rgb[code&0x0f]
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: bad hex literal " + s)
	}
	return c
}
