package pipeline

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"
)

// memWriterAt is an in-memory io.WriterAt that grows as needed, standing
// in for an *os.File in tests that don't want real filesystem state.
type memWriterAt struct {
	mu   sync.Mutex
	data []byte
}

func (m *memWriterAt) WriteAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	end := off + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	copy(m.data[off:end], p)
	return len(p), nil
}

func (m *memWriterAt) bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

func roundTripFile(t *testing.T, src []byte, opts *Options) {
	t.Helper()
	var compressed memWriterAt
	if err := CompressFile(opts, bytes.NewReader(src), int64(len(src)), &compressed); err != nil {
		t.Fatalf("CompressFile: %v", err)
	}

	var out memWriterAt
	if err := DecompressFile(opts, bytes.NewReader(compressed.bytes()), &out); err != nil {
		t.Fatalf("DecompressFile: %v", err)
	}

	got := out.bytes()
	if !bytes.Equal(got, src) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(src))
	}
}

func TestFileRoundTripSmall(t *testing.T) {
	roundTripFile(t, []byte("hello, world"), nil)
}

func TestFileRoundTripEmpty(t *testing.T) {
	roundTripFile(t, nil, nil)
}

func TestFileRoundTripMultiChunk(t *testing.T) {
	opts := &Options{NumWorkers: 4, ChunkSize: 256}
	src := make([]byte, 256*10+37)
	r := rand.New(rand.NewSource(7))
	r.Read(src)
	roundTripFile(t, src, opts)
}

func TestFileRoundTripExactChunkMultiple(t *testing.T) {
	opts := &Options{NumWorkers: 3, ChunkSize: 128}
	src := make([]byte, 128*5)
	r := rand.New(rand.NewSource(8))
	r.Read(src)
	roundTripFile(t, src, opts)
}

func TestFileRoundTripSingleWorker(t *testing.T) {
	opts := &Options{NumWorkers: 1, ChunkSize: 64}
	src := bytes.Repeat([]byte("abcdefgh"), 100)
	roundTripFile(t, src, opts)
}

func TestDecompressRejectsTruncatedPrefix(t *testing.T) {
	err := DecompressFile(nil, bytes.NewReader([]byte{1, 2}), &memWriterAt{})
	if err != ErrTruncatedLengthPrefix {
		t.Fatalf("got %v, want ErrTruncatedLengthPrefix", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.NumWorkers < 1 || o.NumWorkers > maxWorkers {
		t.Fatalf("NumWorkers = %d out of range", o.NumWorkers)
	}
	if o.ChunkSize <= 0 {
		t.Fatalf("ChunkSize = %d, want positive", o.ChunkSize)
	}
}
