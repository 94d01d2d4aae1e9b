package block

import "errors"

// ErrSourceTooLarge is returned by CompressBlock when src is longer than
// format.MaxCompressLen: the caller is expected to chunk larger inputs
// itself (package pipeline does this for whole files).
var ErrSourceTooLarge = errors.New("block: source exceeds max compress length")

// ErrCorruptBlock is returned by DecompressBlock when the bitstream
// doesn't parse as a well-formed block: a bad header, an unassigned
// Huffman code, or a back-reference pointing before the start of output.
var ErrCorruptBlock = errors.New("block: corrupt or truncated block")
