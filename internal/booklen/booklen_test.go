package booklen

import (
	"reflect"
	"testing"
)

func roundTrip(t *testing.T, lengths []uint8) {
	t.Helper()
	tokens := Encode(lengths)
	d := NewDecoder(len(lengths))
	for _, tok := range tokens {
		d.Push(tok.Symbol, tok.Extra)
	}
	if !d.Done() {
		t.Fatalf("decoder did not fill table: pos=%d want=%d", d.pos, len(lengths))
	}
	if !reflect.DeepEqual(d.Lengths(), lengths) {
		t.Fatalf("got %v want %v", d.Lengths(), lengths)
	}
}

func TestRoundTripVariedLengths(t *testing.T) {
	cases := [][]uint8{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		make([]uint8, 0),
		{5},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 3, 3, 3, 3, 3, 3, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}
	for i, lengths := range cases {
		t.Run(string(rune('a'+i)), func(t *testing.T) {
			roundTrip(t, lengths)
		})
	}
}

func TestRoundTripLongZeroRun(t *testing.T) {
	lengths := make([]uint8, 200)
	for i := 100; i < 150; i++ {
		lengths[i] = 0
	}
	for i := range lengths {
		if i < 100 || i >= 150 {
			lengths[i] = uint8(1 + i%8)
		}
	}
	roundTrip(t, lengths)
}

func TestRoundTripFullPrimaryAlphabet(t *testing.T) {
	lengths := make([]uint8, 385)
	for i := range lengths {
		switch {
		case i < 50:
			lengths[i] = uint8(1 + i%9)
		case i < 300:
			lengths[i] = 0
		default:
			lengths[i] = uint8(1 + i%9)
		}
	}
	roundTrip(t, lengths)
}
