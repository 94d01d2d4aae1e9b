package bitstream

import "errors"

// ErrOverflow is returned by Reader when a load would need bytes past the
// end of the backing slice. Callers treat this as a protocol error: a
// well-formed block never drives a reader past its own bounds.
var ErrOverflow = errors.New("bitstream: read past end of buffer")
