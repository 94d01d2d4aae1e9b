package lzmatch

import (
	"github.com/czip-go/czip/internal/bitstream"
	"github.com/czip-go/czip/internal/format"
)

const hashTableSize = 1 << 16

// Result is the output of a single FindMatches pass: the literal/match
// symbol stream in emission order (terminated with format.SymbolTerm), a
// frequency table over the full alphabet ready to feed the Huffman tree
// builder, and the bit offset the extra-bit writer stopped at.
type Result struct {
	Symbols      []uint16
	Freq         [format.SymbolCount]uint32
	ExtraBitsEnd uint64
}

// FindMatches scans input for back-references and writes the associated
// length/distance extra bits into scratch starting at bit 32 (the block
// header occupies bits 0-31). It never looks more than one candidate deep
// per hash bucket and never performs lazy matching: the first match that
// clears MinMatchLen is taken.
func FindMatches(input []byte, scratch []byte) Result {
	var res Result
	table := make([]int32, hashTableSize)
	for i := range table {
		table[i] = -1
	}

	w := bitstream.NewWriter(scratch, 32)
	symbols := make([]uint16, 0, len(input)+1)
	n := len(input)

	i := 0
	for i+format.MinMatchLen <= n {
		fp := fingerprint(load32(input[i:]))
		cand := table[fp]
		table[fp] = int32(i)

		if cand >= 0 {
			dist := i - int(cand)
			limit := n
			if i+format.MaxMatchLen < limit {
				limit = i + format.MaxMatchLen
			}
			length := extendMatch(input, i, int(cand), limit)
			if length >= format.MinMatchLen {
				code, lb, db, lenExtra, distExtra := matchCode(length, dist)
				sym := uint16(format.MatchOffset + code)
				symbols = append(symbols, sym)
				res.Freq[sym]++
				w.Write(lenExtra, lb)
				w.Write(distExtra, db)

				for k := 1; k <= 3 && i+k+format.MinMatchLen <= n; k++ {
					table[fingerprint(load32(input[i+k:]))] = int32(i + k)
				}
				i += length
				continue
			}
		}

		sym := uint16(input[i])
		symbols = append(symbols, sym)
		res.Freq[sym]++
		i++
	}

	for ; i < n; i++ {
		sym := uint16(input[i])
		symbols = append(symbols, sym)
		res.Freq[sym]++
	}

	symbols = append(symbols, format.SymbolTerm)
	res.Freq[format.SymbolTerm]++

	res.Symbols = symbols
	res.ExtraBitsEnd = w.BitOffset()
	w.Flush()
	return res
}

// fingerprint is the fixed hash named by the format: the top 16 bits of a
// Fibonacci multiplicative hash over a little-endian 32-bit load. It must
// stay exactly this formula for match selection to be reproducible (P5);
// see the module's grounding notes for why this isn't xxhash or similar.
func fingerprint(v uint32) uint16 {
	return uint16((v * format.HashConstant) >> 16)
}

func load32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func extendMatch(input []byte, cur, cand, limit int) int {
	n := 0
	for cur+n < limit && input[cur+n] == input[cand+n] {
		n++
	}
	return n
}

// matchCode packs a (length, distance) pair into the MATCH_CODE scheme:
// lb/db are the bit-lengths of (length-3) and distance, code is
// (lb<<LenShift)|db, and lenExtra/distExtra are what remains once the
// implicit leading bit of each log-bucket is subtracted off.
func matchCode(length, dist int) (code int, lb, db uint8, lenExtra, distExtra uint64) {
	lb = bitsLen(uint32(length - 3))
	db = bitsLen(uint32(dist))
	code = int(lb)<<format.LenShift | int(db)
	lenExtra = uint64(length) - (uint64(1)<<lb + 3)
	distExtra = uint64(dist) - uint64(1)<<db
	return
}

func bitsLen(v uint32) uint8 {
	var n uint8
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}
