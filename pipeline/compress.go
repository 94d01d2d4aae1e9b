package pipeline

import (
	"encoding/binary"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/czip-go/czip/block"
)

// compressState is the shared, mostly lock-free control block the
// original kept in an anonymous mapping across forked processes. Here it
// is just a struct of atomics shared by goroutines: nextChunk hands out
// work (fetch-and-add), nextWrite gates output so blocks land in chunk
// order even though compression finishes out of order, and outOffset
// reserves the next span of output bytes once it's a chunk's turn.
type compressState struct {
	in        io.ReaderAt
	out       io.WriterAt
	chunkSize int64
	totalLen  int64
	numChunks uint64

	nextChunk atomic.Uint64
	nextWrite atomic.Uint64
	outOffset atomic.Uint64

	errOnce sync.Once
	err     error
}

func (s *compressState) fail(err error) {
	s.errOnce.Do(func() { s.err = err })
}

func (s *compressState) failed() error {
	return s.err
}

func (s *compressState) run() {
	for {
		chunkIdx := s.nextChunk.Add(1) - 1
		if chunkIdx >= s.numChunks || s.failed() != nil {
			return
		}

		offset := int64(chunkIdx) * s.chunkSize
		length := s.chunkSize
		if offset+length > s.totalLen {
			length = s.totalLen - offset
		}

		buf := make([]byte, length)
		if _, err := readFullAt(s.in, buf, offset); err != nil {
			s.fail(err)
			return
		}

		compressed, err := block.CompressBlock(buf)
		if err != nil {
			s.fail(err)
			return
		}

		for s.nextWrite.Load() != chunkIdx {
			if s.failed() != nil {
				return
			}
			runtime.Gosched()
		}

		writeLen := uint64(4 + len(compressed))
		writeOffset := int64(s.outOffset.Add(writeLen) - writeLen)

		var header [4]byte
		binary.LittleEndian.PutUint32(header[:], uint32(len(compressed)))
		if _, err := s.out.WriteAt(header[:], writeOffset); err != nil {
			s.fail(err)
			s.nextWrite.Store(chunkIdx + 1)
			return
		}
		if len(compressed) > 0 {
			if _, err := s.out.WriteAt(compressed, writeOffset+4); err != nil {
				s.fail(err)
				s.nextWrite.Store(chunkIdx + 1)
				return
			}
		}

		slog.Debug("pipeline: chunk compressed", "chunk", chunkIdx, "in_len", length, "out_len", len(compressed))
		s.nextWrite.Store(chunkIdx + 1)
	}
}

// CompressFile reads totalLen bytes from in and writes the length-prefixed
// block stream (spec.md §3's file layout, terminated by a zero-length
// block) to out. opts may be nil for the defaults.
func CompressFile(opts *Options, in io.ReaderAt, totalLen int64, out io.WriterAt) error {
	opts = opts.orDefault()

	numChunks := uint64(0)
	if totalLen > 0 {
		numChunks = uint64((totalLen + int64(opts.ChunkSize) - 1) / int64(opts.ChunkSize))
	}

	state := &compressState{
		in:        in,
		out:       out,
		chunkSize: int64(opts.ChunkSize),
		totalLen:  totalLen,
		numChunks: numChunks,
	}

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state.run()
		}()
	}
	wg.Wait()

	if err := state.failed(); err != nil {
		return err
	}

	var terminator [4]byte
	_, err := out.WriteAt(terminator[:], int64(state.outOffset.Load()))
	return err
}

func readFullAt(r io.ReaderAt, buf []byte, offset int64) (int, error) {
	n, err := r.ReadAt(buf, offset)
	if err == io.EOF && n == len(buf) {
		err = nil
	}
	return n, err
}
