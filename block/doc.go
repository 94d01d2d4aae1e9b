// Package block implements the single-block codec: CompressBlock and
// DecompressBlock turn up to format.MaxCompressLen bytes into a block and
// back. A block starts with a one-byte mode tag: in encoded mode the rest
// is the layout spec.md §3 describes (a 4-byte bit-cursor header, an
// extra-bit region, and a book/length/symbol region), built by gluing
// together internal/lzmatch, internal/huffman, internal/booklen and
// internal/bitstream; in raw mode the rest is the source verbatim.
package block
