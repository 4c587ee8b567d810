// Package console implements the console core: a single lock serializing
// an interrupt-driven input path, a line-disciplined blocking reader, the
// output formatter for the text surface, the color-menu chord state
// machine, and the kernel-style diagnostic printer with its one-way halt.
//
// One Console instance exists per system. Every operation goes through the
// instance; there is no package-level state.
package console
