package bitstream

import "encoding/binary"

// Reader walks a byte slice LSB-first, the mirror of Writer. Like Writer it
// tracks an absolute bit cursor, so two Readers can be driven in lock-step
// over disjoint regions of the same block (the extra-bit region and the
// length/symbol region), each independently bounds-checked against the
// slice's own length.
type Reader struct {
	data   []byte
	cap    uint64 // len(data), in bytes
	buffer uint64
	bits   uint8
	cursor uint64 // next bit offset not yet loaded into buffer
}

// NewReader returns a Reader positioned at the given absolute bit offset.
func NewReader(data []byte, startBit uint64) *Reader {
	return &Reader{data: data, cap: uint64(len(data)), cursor: startBit}
}

// Peek returns the low n bits currently buffered without consuming them.
// The caller must have at least n bits buffered (via TryRead or a prior
// successful load); Peek itself never triggers a load.
func (r *Reader) Peek(n uint8) uint64 {
	return r.buffer & widthMasks[n]
}

// Advance consumes n bits previously returned by Peek.
func (r *Reader) Advance(n uint8) {
	r.buffer >>= n
	r.bits -= n
}

// TryRead returns the next n bits, refilling the buffer first if needed.
// It fails with ErrOverflow if refilling would read past the end of data.
func (r *Reader) TryRead(n uint8) (uint64, error) {
	if r.bits < n {
		if err := r.load(); err != nil {
			return 0, err
		}
		if r.bits < n {
			return 0, ErrOverflow
		}
	}
	v := r.Peek(n)
	r.Advance(n)
	return v, nil
}

// Fill ensures at least n bits are buffered, for callers that want to Peek
// a value before deciding how many bits of it to Advance (canonical Huffman
// decode: peek MaxCodeLength bits, look up the real length, advance that).
func (r *Reader) Fill(n uint8) error {
	if r.bits < n {
		if err := r.load(); err != nil {
			return err
		}
		if r.bits < n {
			return ErrOverflow
		}
	}
	return nil
}

// load refills the buffer up to 64 bits. It reads only the bytes the
// refill actually needs (at most 9, to absorb one partial byte on either
// end of the window) rather than assuming 8 physical bytes always follow
// the cursor, so a Reader can run right up against the end of a slice
// without a bounds panic.
func (r *Reader) load() error {
	bitsToLoad := uint64(64 - r.bits)
	if bitsToLoad == 0 {
		return nil
	}
	if r.cursor >= r.cap*8 {
		return ErrOverflow
	}
	if avail := r.cap*8 - r.cursor; avail < bitsToLoad {
		bitsToLoad = avail
	}
	bitOffset := r.cursor
	bytePos := bitOffset >> 3
	bitRemainder := uint(bitOffset & 7)
	endByte := (bitOffset + bitsToLoad + 7) >> 3

	var buf [9]byte
	n := endByte - bytePos
	copy(buf[:n], r.data[bytePos:endByte])

	raw := binary.LittleEndian.Uint64(buf[:8])
	newBits := raw >> bitRemainder
	if bitRemainder != 0 {
		newBits |= uint64(buf[8]) << (64 - bitRemainder)
	}
	newBits &= widthMasks[bitsToLoad]

	r.buffer |= newBits << r.bits
	r.cursor += bitsToLoad
	r.bits += uint8(bitsToLoad)
	return nil
}
