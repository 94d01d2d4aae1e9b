package bitstream

import "testing"

func TestWriteReadRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		values []uint64
		widths []uint8
	}{
		{"single byte", []uint64{0xAB}, []uint8{8}},
		{"mixed widths", []uint64{1, 0, 7, 255, 3}, []uint8{1, 1, 3, 8, 2}},
		{"wide fields", []uint64{0x1FFFFFFFFFFFFFF, 0x3, 0}, []uint8{57, 2, 1}},
		{"many small", []uint64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 64)
			w := NewWriter(buf, 0)
			for i, v := range tc.values {
				w.Write(v, tc.widths[i])
			}
			w.Flush()

			r := NewReader(buf, 0)
			for i, want := range tc.values {
				got, err := r.TryRead(tc.widths[i])
				if err != nil {
					t.Fatalf("field %d: %v", i, err)
				}
				want &= widthMasks[tc.widths[i]]
				if got != want {
					t.Fatalf("field %d: got %#x want %#x", i, got, want)
				}
			}
		})
	}
}

func TestWriterUnalignedStart(t *testing.T) {
	buf := make([]byte, 32)
	w := NewWriter(buf, 3)
	w.Write(0x5A, 8)
	w.Write(0x2, 2)
	w.Flush()

	r := NewReader(buf, 3)
	v, err := r.TryRead(8)
	if err != nil || v != 0x5A {
		t.Fatalf("got %#x, err %v", v, err)
	}
	v, err = r.TryRead(2)
	if err != nil || v != 0x2 {
		t.Fatalf("got %#x, err %v", v, err)
	}
}

func TestReaderOverflow(t *testing.T) {
	buf := make([]byte, 2)
	r := NewReader(buf, 0)
	if _, err := r.TryRead(8); err != nil {
		t.Fatalf("unexpected error on in-bounds read: %v", err)
	}
	if _, err := r.TryRead(8); err != nil {
		t.Fatalf("unexpected error on last in-bounds read: %v", err)
	}
	if _, err := r.TryRead(1); err != ErrOverflow {
		t.Fatalf("got %v, want ErrOverflow", err)
	}
}

func TestPeekAdvanceIndependence(t *testing.T) {
	buf := make([]byte, 16)
	w := NewWriter(buf, 0)
	w.Write(0x1A2, 9)
	w.Write(0x3, 2)
	w.Flush()

	r := NewReader(buf, 0)
	if err := r.Fill(9); err != nil {
		t.Fatal(err)
	}
	if got := r.Peek(9); got != 0x1A2 {
		t.Fatalf("got %#x want %#x", got, 0x1A2)
	}
	r.Advance(9)
	v, err := r.TryRead(2)
	if err != nil || v != 0x3 {
		t.Fatalf("got %#x, err %v", v, err)
	}
}

func TestTwoIndependentCursorsOverSameBuffer(t *testing.T) {
	buf := make([]byte, 64)
	extra := NewWriter(buf, 32)
	extra.Write(0b10110, 5)
	extra.Write(0b1, 1)
	extraEnd := extra.BitOffset()
	extra.Flush()

	main := NewWriter(buf, extraEnd)
	main.Write(0xFF, 8)
	main.Flush()

	er := NewReader(buf, 32)
	v, err := er.TryRead(5)
	if err != nil || v != 0b10110 {
		t.Fatalf("extra region: got %#x err %v", v, err)
	}

	mr := NewReader(buf, extraEnd)
	v, err = mr.TryRead(8)
	if err != nil || v != 0xFF {
		t.Fatalf("main region: got %#x err %v", v, err)
	}
}
