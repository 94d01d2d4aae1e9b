package block

import (
	"encoding/binary"

	"github.com/czip-go/czip/internal/bitstream"
	"github.com/czip-go/czip/internal/booklen"
	"github.com/czip-go/czip/internal/format"
	"github.com/czip-go/czip/internal/huffman"
	"github.com/czip-go/czip/internal/lzmatch"
)

const paddingBits = 128

// Mode tags the first byte of every block: whether the remainder is a
// Huffman-coded stream or a raw, uncompressed copy of the source.
const (
	modeEncoded byte = 0
	modeRaw     byte = 1
)

// CompressBlock encodes src as a single block. src must be no longer than
// format.MaxCompressLen; larger inputs are the caller's job to chunk
// (package pipeline does this for whole files).
//
// The book/length-table and padding overhead the encoded path always pays
// is fixed, independent of len(src); for small or incompressible inputs it
// can exceed len(src) itself. CompressBlock falls back to a raw store of
// src, tagged with a single mode byte, whenever that encoding would not be
// smaller, which keeps CompressBlock's output within CompressBound for
// every input, not just compressible ones.
func CompressBlock(src []byte) ([]byte, error) {
	if len(src) > format.MaxCompressLen {
		return nil, ErrSourceTooLarge
	}

	rawTotal := 1 + len(src)
	encoded, err := encodeBlock(src)
	if err == nil && 1+len(encoded) <= rawTotal {
		out := make([]byte, 1+len(encoded))
		out[0] = modeEncoded
		copy(out[1:], encoded)
		return out, nil
	}

	out := make([]byte, rawTotal)
	out[0] = modeRaw
	copy(out[1:], src)
	return out, nil
}

// encodeBlock runs the full LZ77+Huffman+book pipeline and returns the
// encoded body (everything after CompressBlock's mode byte).
func encodeBlock(src []byte) ([]byte, error) {
	scratch := make([]byte, scratchCapacity(len(src)))

	matches := lzmatch.FindMatches(src, scratch)

	primTable, err := huffman.Build(matches.Freq[:], format.MaxCodeLength)
	if err != nil {
		return nil, err
	}

	tokens := booklen.Encode(primTable.Lengths)
	var bookFreq [format.MaxBookCodes]uint32
	for _, tok := range tokens {
		bookFreq[tok.Symbol]++
	}
	bookTable, err := huffman.Build(bookFreq[:], format.MaxBookCodeLength)
	if err != nil {
		return nil, err
	}

	w := bitstream.NewWriter(scratch, matches.ExtraBitsEnd)

	for sym := 0; sym < format.MaxBookCodes; sym++ {
		w.Write(uint64(bookTable.Lengths[sym]), 3)
	}

	for _, tok := range tokens {
		w.Write(uint64(bookTable.Codes[tok.Symbol]), bookTable.Lengths[tok.Symbol])
		if tok.ExtraBits > 0 {
			w.Write(tok.Extra, tok.ExtraBits)
		}
	}

	for _, sym := range matches.Symbols {
		w.Write(uint64(primTable.Codes[sym]), primTable.Lengths[sym])
	}

	for remaining := paddingBits; remaining > 0; {
		n := remaining
		if n > 57 {
			n = 57
		}
		w.Write(0, uint8(n))
		remaining -= n
	}

	finalBitLen := w.BitOffset()
	w.Flush()

	extraBitsLen := matches.ExtraBitsEnd - 32
	binary.LittleEndian.PutUint32(scratch[0:4], uint32(extraBitsLen))

	totalBytes := (finalBitLen + 7) / 8
	out := make([]byte, totalBytes)
	copy(out, scratch[:totalBytes])
	return out, nil
}
