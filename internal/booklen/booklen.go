package booklen

import "github.com/czip-go/czip/internal/format"

// Token is one emitted book symbol plus the extra bits (if any) that
// follow it in the bitstream.
type Token struct {
	Symbol    uint8
	Extra     uint64
	ExtraBits uint8
}

// ExtraBits reports how many extra bits follow a given book symbol.
func ExtraBits(symbol uint8) uint8 {
	switch symbol {
	case format.RepeatValueIndex:
		return 2
	case format.RepeatZeroLongIndex:
		return 7
	case format.RepeatZeroShortIndex:
		return 3
	default:
		return 0
	}
}

const (
	repeatValueMin     = 3
	repeatValueMax     = 6
	repeatZeroLongMin  = 11
	repeatZeroLongMax  = 138
	repeatZeroShortMin = 3
	repeatZeroShortMax = 10
)

// Encode run-length-packs a code-length table (one entry per symbol, in
// symbol order) into book tokens: literal length values 0-9 stand for
// themselves, a run of 3+ repeats of the same nonzero value collapses to
// REPEAT_VALUE chunks, and a run of 3+ zero lengths collapses to
// REPEAT_ZERO_SHORT/REPEAT_ZERO_LONG chunks.
func Encode(lengths []uint8) []Token {
	var tokens []Token
	i := 0
	for i < len(lengths) {
		runLen := 1
		for i+runLen < len(lengths) && lengths[i+runLen] == lengths[i] {
			runLen++
		}
		value := lengths[i]

		if value == 0 {
			remaining := runLen
			for remaining > 0 {
				switch {
				case remaining < repeatZeroShortMin:
					tokens = append(tokens, Token{Symbol: 0})
					remaining--
				case remaining <= repeatZeroShortMax:
					tokens = append(tokens, Token{
						Symbol:    format.RepeatZeroShortIndex,
						Extra:     uint64(remaining - repeatZeroShortMin),
						ExtraBits: 3,
					})
					remaining = 0
				default:
					chunk := remaining
					if chunk > repeatZeroLongMax {
						chunk = repeatZeroLongMax
					}
					tokens = append(tokens, Token{
						Symbol:    format.RepeatZeroLongIndex,
						Extra:     uint64(chunk - repeatZeroLongMin),
						ExtraBits: 7,
					})
					remaining -= chunk
				}
			}
		} else {
			tokens = append(tokens, Token{Symbol: value})
			remaining := runLen - 1
			for remaining > 0 {
				if remaining < repeatValueMin {
					tokens = append(tokens, Token{Symbol: value})
					remaining--
					continue
				}
				chunk := remaining
				if chunk > repeatValueMax {
					chunk = repeatValueMax
				}
				tokens = append(tokens, Token{
					Symbol:    format.RepeatValueIndex,
					Extra:     uint64(chunk - repeatValueMin),
					ExtraBits: 2,
				})
				remaining -= chunk
			}
		}

		i += runLen
	}
	return tokens
}

// Decoder reconstructs a code-length table from the token stream one
// symbol at a time, tracking enough state (the last literal value and the
// output position) to expand repeat codes.
type Decoder struct {
	out      []uint8
	pos      int
	lastVal  uint8
}

// NewDecoder prepares a Decoder to fill a code-length table of size n.
func NewDecoder(n int) *Decoder {
	return &Decoder{out: make([]uint8, n)}
}

// Done reports whether the table has been fully filled.
func (d *Decoder) Done() bool { return d.pos >= len(d.out) }

// Lengths returns the filled table. Valid only once Done reports true.
func (d *Decoder) Lengths() []uint8 { return d.out }

// Push applies one decoded book symbol (and its extra bits, if the symbol
// takes any) to the table being built.
func (d *Decoder) Push(symbol uint8, extra uint64) {
	switch symbol {
	case format.RepeatValueIndex:
		count := int(extra) + repeatValueMin
		for k := 0; k < count && d.pos < len(d.out); k++ {
			d.out[d.pos] = d.lastVal
			d.pos++
		}
	case format.RepeatZeroLongIndex:
		count := int(extra) + repeatZeroLongMin
		for k := 0; k < count && d.pos < len(d.out); k++ {
			d.out[d.pos] = 0
			d.pos++
		}
	case format.RepeatZeroShortIndex:
		count := int(extra) + repeatZeroShortMin
		for k := 0; k < count && d.pos < len(d.out); k++ {
			d.out[d.pos] = 0
			d.pos++
		}
	default:
		d.out[d.pos] = symbol
		d.lastVal = symbol
		d.pos++
	}
}
