package huffman

import "sort"

// Table is a canonical, length-limited Huffman code for one alphabet:
// Lengths[sym]/Codes[sym] are valid for every symbol with Lengths[sym] > 0,
// and decode is a direct-mapped lookup keyed by the next MaxLength bits of
// an LSB-first bit-reader's buffer.
type Table struct {
	MaxLength uint8
	Lengths   []uint8
	Codes     []uint16
	decode    []decodeEntry
}

type decodeEntry struct {
	symbol uint16
	length uint8
	valid  bool
}

// Build constructs a canonical Huffman table over freq (indexed by symbol
// id) whose codes are no longer than maxLength bits, applying the
// overflow-redistribution repair used by length-limited Huffman coders
// when the natural tree depth exceeds the cap.
func Build(freq []uint32, maxLength uint8) (*Table, error) {
	depth, numSymbols := buildDepths(freq)
	if numSymbols == 0 {
		return nil, ErrEmptyAlphabet
	}
	if numSymbols > 1<<maxLength {
		return nil, ErrAlphabetTooLarge
	}

	maxObserved := uint8(0)
	for _, d := range depth {
		if d > maxObserved {
			maxObserved = d
		}
	}

	blCount := make([]int, maxObserved+1) // index 0 unused
	for sym, d := range depth {
		if freq[sym] == 0 {
			continue
		}
		blCount[d]++
	}

	if maxObserved > maxLength {
		limitLengths(blCount, int(maxLength))
	} else {
		grown := make([]int, maxLength+1)
		copy(grown, blCount)
		blCount = grown
	}

	type symDepth struct {
		sym   int
		depth uint8
	}
	ordered := make([]symDepth, 0, numSymbols)
	for sym, d := range depth {
		if freq[sym] == 0 {
			continue
		}
		ordered = append(ordered, symDepth{sym, d})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].depth != ordered[j].depth {
			return ordered[i].depth > ordered[j].depth
		}
		return ordered[i].sym < ordered[j].sym
	})

	lengths := make([]uint8, len(freq))
	pos := 0
	for length := int(maxLength); length >= 1; length-- {
		for blCount[length] > 0 {
			lengths[ordered[pos].sym] = uint8(length)
			pos++
			blCount[length]--
		}
	}

	t := &Table{MaxLength: maxLength, Lengths: lengths}
	t.assignCanonicalCodes()
	t.buildDecodeTable()
	return t, nil
}

// NewFromLengths builds a Table directly from a length assignment read off
// the wire, skipping tree construction: only canonical code assignment and
// the decode table need computing, since the lengths are already final.
func NewFromLengths(lengths []uint8, maxLength uint8) *Table {
	t := &Table{MaxLength: maxLength, Lengths: append([]uint8(nil), lengths...)}
	t.assignCanonicalCodes()
	t.buildDecodeTable()
	return t
}

// limitLengths repairs a bit-length histogram that overflows maxLength, by
// the standard overflow-redistribution method: each excess codeword at an
// over-long length is traded for one codeword one bit shorter, paid for by
// splitting a codeword at the shortest available length below the cap into
// two children one bit longer. This preserves the Kraft equality the
// unlimited tree already satisfied.
func limitLengths(blCount []int, maxLength int) {
	for bits := len(blCount) - 1; bits > maxLength; bits-- {
		for blCount[bits] > 0 {
			j := bits - 2
			for blCount[j] == 0 {
				j--
			}
			blCount[bits] -= 2
			blCount[bits-1]++
			blCount[j+1] += 2
			blCount[j]--
		}
	}
	// blCount[maxLength+1:] is now zero; truncate the slice view the
	// caller relies on by zeroing rather than reslicing, since callers
	// index blCount[1..maxLength] only from here on.
}

// assignCanonicalCodes computes each symbol's canonical code from its
// length alone (per-length starting codes, assigned in symbol order), then
// stores the bit-reversed form since the bitstream packs LSB-first.
func (t *Table) assignCanonicalCodes() {
	codes := make([]uint16, len(t.Lengths))

	var countPerLength [32]int
	for _, l := range t.Lengths {
		if l > 0 {
			countPerLength[l]++
		}
	}

	var firstCode [32]uint16
	code := uint16(0)
	for l := 1; l <= int(t.MaxLength); l++ {
		firstCode[l] = code
		code = (code + uint16(countPerLength[l])) << 1
	}

	next := firstCode
	for sym, l := range t.Lengths {
		if l == 0 {
			continue
		}
		canonical := next[l]
		next[l]++
		codes[sym] = reverseBits(canonical, int(l))
	}

	t.Codes = codes
}

func reverseBits(v uint16, width int) uint16 {
	var r uint16
	for i := 0; i < width; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}

// buildDecodeTable fills a direct-mapped table of size 2^MaxLength: every
// index whose low Lengths[sym] bits equal Codes[sym] maps to sym, for
// every value of the remaining high bits.
func (t *Table) buildDecodeTable() {
	size := 1 << t.MaxLength
	table := make([]decodeEntry, size)
	for sym, l := range t.Lengths {
		if l == 0 {
			continue
		}
		stride := 1 << l
		for base := int(t.Codes[sym]); base < size; base += stride {
			table[base] = decodeEntry{symbol: uint16(sym), length: l, valid: true}
		}
	}
	t.decode = table
}

// Decode looks up the symbol encoded by the low MaxLength bits of window.
func (t *Table) Decode(window uint64) (symbol uint16, length uint8, err error) {
	e := t.decode[window&(uint64(1)<<t.MaxLength-1)]
	if !e.valid {
		return 0, 0, ErrUnknownSymbol
	}
	return e.symbol, e.length, nil
}
