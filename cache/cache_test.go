package cache

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/czip-go/czip/pipeline"
)

type memWriterAt struct{ data []byte }

func (m *memWriterAt) WriteAt(p []byte, off int64) (int, error) {
	end := off + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	copy(m.data[off:end], p)
	return len(p), nil
}

func compressToMem(t *testing.T, src []byte, chunkSize int) []byte {
	t.Helper()
	opts := &pipeline.Options{NumWorkers: 2, ChunkSize: chunkSize}
	var out memWriterAt
	if err := pipeline.CompressFile(opts, bytes.NewReader(src), int64(len(src)), &out); err != nil {
		t.Fatalf("CompressFile: %v", err)
	}
	return out.data
}

func TestReaderAtRandomRanges(t *testing.T) {
	src := make([]byte, 300*7+50)
	r := rand.New(rand.NewSource(3))
	r.Read(src)

	compressed := compressToMem(t, src, 300)
	ra, err := NewReaderAt(bytes.NewReader(compressed), &Options{ChunkSize: 300, MaxChunks: 4})
	if err != nil {
		t.Fatal(err)
	}
	if ra.Size() != int64(len(src)) {
		t.Fatalf("Size() = %d, want %d", ra.Size(), len(src))
	}

	cases := []struct{ off, n int }{
		{0, 10},
		{299, 5},
		{300, 10},
		{1000, 50},
		{len(src) - 20, 20},
	}
	for _, c := range cases {
		buf := make([]byte, c.n)
		n, err := ra.ReadAt(buf, int64(c.off))
		if err != nil && err != io.EOF {
			t.Fatalf("ReadAt(%d,%d): %v", c.off, c.n, err)
		}
		if !bytes.Equal(buf[:n], src[c.off:c.off+n]) {
			t.Fatalf("ReadAt(%d,%d) mismatch", c.off, c.n)
		}
	}
}

func TestReaderAtRepeatedReadsHitCache(t *testing.T) {
	src := bytes.Repeat([]byte("0123456789"), 40)
	compressed := compressToMem(t, src, 64)
	ra, err := NewReaderAt(bytes.NewReader(compressed), &Options{ChunkSize: 64, MaxChunks: 2})
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 10)
	for i := 0; i < 5; i++ {
		if _, err := ra.ReadAt(buf, 5); err != nil && err != io.EOF {
			t.Fatal(err)
		}
	}
}
