// Package bitstream implements the LSB-first bit packing container used by
// the block codec: a Writer that accumulates bits in a 64-bit buffer and
// flushes them to a byte slice via a partial-byte merge followed by an
// aligned store, and a Reader that walks the same layout back with
// peek/advance/try-read primitives. Both sides track bit positions as
// absolute offsets into the backing byte slice, so a caller can run two
// independent readers or writers over disjoint regions of one block.
package bitstream
