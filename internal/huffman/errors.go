package huffman

import "errors"

// ErrEmptyAlphabet is returned by Build when every symbol has zero
// frequency: there is nothing to encode a tree for.
var ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

// ErrAlphabetTooLarge is returned by Build when more distinct symbols have
// nonzero frequency than a code of the requested maximum length can address.
var ErrAlphabetTooLarge = errors.New("huffman: alphabet too large for max code length")

// ErrUnknownSymbol is returned by a Table's Decode when a bit pattern
// doesn't correspond to any assigned code, which only happens against a
// corrupt or truncated stream.
var ErrUnknownSymbol = errors.New("huffman: no symbol for code")
