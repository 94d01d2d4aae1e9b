package block

import (
	"encoding/binary"

	"github.com/czip-go/czip/internal/bitstream"
	"github.com/czip-go/czip/internal/booklen"
	"github.com/czip-go/czip/internal/format"
	"github.com/czip-go/czip/internal/huffman"
)

// DecompressBlock decodes a block produced by CompressBlock. The first byte
// is a mode tag: modeRaw means the rest of src is the decompressed output
// verbatim, modeEncoded dispatches into the Huffman-coded path, which
// drives two independent bit-cursor readers in lock-step: one over the
// extra-bit region for match length/distance fields, one over the
// book/length/symbol region for the Huffman-coded stream itself.
func DecompressBlock(src []byte) ([]byte, error) {
	if len(src) < 1 {
		return nil, ErrCorruptBlock
	}
	mode, body := src[0], src[1:]

	switch mode {
	case modeRaw:
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	case modeEncoded:
		return decodeEncoded(body)
	default:
		return nil, ErrCorruptBlock
	}
}

func decodeEncoded(src []byte) ([]byte, error) {
	if len(src) < 4 {
		return nil, ErrCorruptBlock
	}
	extraBitsLen := uint64(binary.LittleEndian.Uint32(src[0:4]))
	mainStart := 32 + extraBitsLen

	extraReader := bitstream.NewReader(src, 32)
	mainReader := bitstream.NewReader(src, mainStart)

	bookLengths := make([]uint8, format.MaxBookCodes)
	for i := range bookLengths {
		v, err := mainReader.TryRead(3)
		if err != nil {
			return nil, err
		}
		bookLengths[i] = uint8(v)
	}
	bookTable := huffman.NewFromLengths(bookLengths, format.MaxBookCodeLength)

	primLengths, err := decodePrimaryLengths(mainReader, bookTable)
	if err != nil {
		return nil, err
	}
	primTable := huffman.NewFromLengths(primLengths, format.MaxCodeLength)

	return decodeSymbols(mainReader, extraReader, primTable)
}

func decodePrimaryLengths(mainReader *bitstream.Reader, bookTable *huffman.Table) ([]uint8, error) {
	dec := booklen.NewDecoder(format.SymbolCount)
	for !dec.Done() {
		if err := mainReader.Fill(bookTable.MaxLength); err != nil {
			return nil, err
		}
		sym, length, err := bookTable.Decode(mainReader.Peek(bookTable.MaxLength))
		if err != nil {
			return nil, ErrCorruptBlock
		}
		mainReader.Advance(length)

		var extra uint64
		if n := booklen.ExtraBits(uint8(sym)); n > 0 {
			extra, err = mainReader.TryRead(n)
			if err != nil {
				return nil, err
			}
		}
		dec.Push(uint8(sym), extra)
	}
	return dec.Lengths(), nil
}

func decodeSymbols(mainReader, extraReader *bitstream.Reader, primTable *huffman.Table) ([]byte, error) {
	var out []byte
	for {
		if err := mainReader.Fill(primTable.MaxLength); err != nil {
			return nil, err
		}
		sym, length, err := primTable.Decode(mainReader.Peek(primTable.MaxLength))
		if err != nil {
			return nil, ErrCorruptBlock
		}
		mainReader.Advance(length)

		if sym == format.SymbolTerm {
			return out, nil
		}
		if sym < format.SymbolTerm {
			out = append(out, byte(sym))
			if len(out) > format.MaxCompressLen {
				return nil, ErrCorruptBlock
			}
			continue
		}

		code := int(sym) - format.MatchOffset
		lb, db := format.SplitCode(code)
		lenExtra, err := extraReader.TryRead(lb)
		if err != nil {
			return nil, err
		}
		distExtra, err := extraReader.TryRead(db)
		if err != nil {
			return nil, err
		}
		matchLen, dist := format.UnpackMatch(lb, db, lenExtra, distExtra)
		if dist <= 0 || dist > len(out) {
			return nil, ErrCorruptBlock
		}
		if len(out)+matchLen > format.MaxCompressLen {
			return nil, ErrCorruptBlock
		}

		start := len(out) - dist
		for k := 0; k < matchLen; k++ {
			out = append(out, out[start+k])
		}
	}
}
