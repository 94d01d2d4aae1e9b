package pipeline

import "errors"

// ErrTruncatedLengthPrefix is returned when the input ends (or a read
// fails) in the middle of a 4-byte block-length prefix.
var ErrTruncatedLengthPrefix = errors.New("pipeline: truncated block length prefix")

// ErrTruncatedBlock names a block whose length prefix claims more bytes
// than remain in the input. DecompressFile does not return it: a short
// block body surfaces as the input reader's own error (io.EOF from a
// bytes.Reader or *os.File).
var ErrTruncatedBlock = errors.New("pipeline: truncated block body")
