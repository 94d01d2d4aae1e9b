package huffman

import "testing"

func kraftOK(t *testing.T, lengths []uint8) {
	t.Helper()
	var sum float64
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		sum += 1.0 / float64(uint64(1)<<l)
	}
	if sum > 1.0+1e-9 {
		t.Fatalf("Kraft inequality violated: sum=%v", sum)
	}
}

func TestBuildSingleSymbol(t *testing.T) {
	freq := make([]uint32, 8)
	freq[3] = 100
	tbl, err := Build(freq, 5)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Lengths[3] != 1 {
		t.Fatalf("got length %d, want 1", tbl.Lengths[3])
	}
	sym, length, err := tbl.Decode(uint64(tbl.Codes[3]))
	if err != nil || sym != 3 || length != 1 {
		t.Fatalf("decode: sym=%d length=%d err=%v", sym, length, err)
	}
}

func TestBuildRoundTripAllSymbols(t *testing.T) {
	freq := make([]uint32, 16)
	weights := []uint32{50, 1, 1, 2, 3, 5, 8, 13, 21, 34, 1, 1, 1, 1, 1, 1}
	copy(freq, weights)
	tbl, err := Build(freq, 9)
	if err != nil {
		t.Fatal(err)
	}
	kraftOK(t, tbl.Lengths)

	for sym, l := range tbl.Lengths {
		if l == 0 {
			continue
		}
		window := uint64(tbl.Codes[sym])
		gotSym, gotLen, err := tbl.Decode(window)
		if err != nil {
			t.Fatalf("symbol %d: %v", sym, err)
		}
		if gotSym != uint16(sym) || gotLen != l {
			t.Fatalf("symbol %d: decoded sym=%d len=%d", sym, gotSym, gotLen)
		}
	}
}

func TestBuildRespectsMaxLength(t *testing.T) {
	// A skewed distribution whose natural tree would exceed maxLength=5.
	freq := make([]uint32, 32)
	for i := range freq {
		freq[i] = 1
	}
	freq[0] = 1000
	tbl, err := Build(freq, 5)
	if err != nil {
		t.Fatal(err)
	}
	for sym, l := range tbl.Lengths {
		if l > 5 {
			t.Fatalf("symbol %d has length %d > max 5", sym, l)
		}
	}
	kraftOK(t, tbl.Lengths)
}

func TestBuildEmptyAlphabet(t *testing.T) {
	freq := make([]uint32, 4)
	if _, err := Build(freq, 5); err != ErrEmptyAlphabet {
		t.Fatalf("got %v, want ErrEmptyAlphabet", err)
	}
}

func TestBuildAlphabetTooLarge(t *testing.T) {
	freq := make([]uint32, 9)
	for i := range freq {
		freq[i] = 1
	}
	if _, err := Build(freq, 2); err != ErrAlphabetTooLarge {
		t.Fatalf("got %v, want ErrAlphabetTooLarge", err)
	}
}

func TestDecodeUnknownSymbol(t *testing.T) {
	// A single-symbol code assigns only the 1-bit code 0, so every window
	// whose low bit is 1 has no symbol.
	freq := make([]uint32, 4)
	freq[0] = 1
	tbl, err := Build(freq, 3)
	if err != nil {
		t.Fatal(err)
	}
	for w := uint64(0); w < 1<<tbl.MaxLength; w++ {
		_, _, err := tbl.Decode(w)
		if w&1 == 1 && err != ErrUnknownSymbol {
			t.Fatalf("window %#x: got %v, want ErrUnknownSymbol", w, err)
		}
	}
}
