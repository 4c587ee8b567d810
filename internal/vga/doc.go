// Package vga models a CGA/VGA text-mode display: a flat 80x25 grid of
// character+attribute cells with a hardware cursor index.
//
// The package provides:
//   - Attr, the 16-bit attribute word with foreground/background nibbles
//   - Surface, the contract the console core needs from display hardware
//   - Memory, an in-memory Surface used by tests and embedded by the
//     terminal adapter
//   - Rect, origin+stride rectangle addressing shared by overlay drawing,
//     highlighting, and backup/restore
package vga
