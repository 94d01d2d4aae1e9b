package cache

import "errors"

// ErrTruncatedLengthPrefix is returned when the underlying file ends (or
// a read fails) in the middle of a 4-byte block-length prefix.
var ErrTruncatedLengthPrefix = errors.New("cache: truncated block length prefix")
