// Package booklen implements the run-length packer for a Huffman code's
// length table: the 13-symbol "book" alphabet (ten literal length values,
// plus three repeat codes for runs of a repeated nonzero length or of
// zero lengths) that spec.md's format uses to compress the primary code's
// 385 per-symbol lengths before Huffman-coding that secondary stream.
package booklen
