// SPDX-License-Identifier: GPL-2.0-only

package czip

import (
	"errors"

	"github.com/czip-go/czip/block"
	"github.com/czip-go/czip/internal/bitstream"
	"github.com/czip-go/czip/pipeline"
)

// ErrorKind classifies a czip error into one of four broad categories, for
// callers that want to react programmatically (retry, fail fast, log and
// skip) instead of matching a specific sentinel.
type ErrorKind int

const (
	// KindInvalidArgument: the caller passed something the API rejects
	// outright (a block larger than the format allows).
	KindInvalidArgument ErrorKind = iota
	// KindOverflow: a bounded internal structure (the bit reader) would
	// need to run past the data it was given.
	KindOverflow
	// KindProtocol: the bytes don't parse as a well-formed block or file
	// stream — corrupt or truncated input.
	KindProtocol
	// KindIoError: the underlying reader or writer failed.
	KindIoError
)

// Sentinel errors, re-exported from the subpackages that define them so
// callers can errors.Is against the root package directly.
var (
	// ErrSourceTooLarge: CompressBlock's input exceeds format.MaxCompressLen.
	ErrSourceTooLarge = block.ErrSourceTooLarge
	// ErrCorruptBlock: DecompressBlock could not parse its input as a
	// well-formed block.
	ErrCorruptBlock = block.ErrCorruptBlock
	// ErrBitstreamOverflow: a bit reader needed bytes past the end of its
	// buffer, the lowest-level symptom of truncated or corrupt input.
	ErrBitstreamOverflow = bitstream.ErrOverflow
	// ErrTruncatedLengthPrefix: a file's block stream ended mid-header.
	ErrTruncatedLengthPrefix = pipeline.ErrTruncatedLengthPrefix
)

// Kind reports which of the four error categories err falls into. Errors
// that don't match any known sentinel (most often an I/O failure bubbled
// up from a caller-supplied reader or writer) classify as KindIoError.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrSourceTooLarge):
		return KindInvalidArgument
	case errors.Is(err, ErrBitstreamOverflow):
		return KindOverflow
	case errors.Is(err, ErrCorruptBlock), errors.Is(err, ErrTruncatedLengthPrefix):
		return KindProtocol
	default:
		return KindIoError
	}
}
