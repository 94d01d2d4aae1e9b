package pipeline

import (
	"encoding/binary"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/czip-go/czip/block"
)

// chunkOffset records where one compressed block starts in the input and
// how many bytes its body occupies, as discovered by scanChunks.
type chunkOffset struct {
	inputOffset   int64
	compressedLen int64
}

// scanChunks walks the length-prefixed block stream once to build the
// table of input offsets decompression workers need: compressed block
// sizes vary, so finding where block i starts means having already read
// every length prefix before it.
func scanChunks(in io.ReaderAt) ([]chunkOffset, error) {
	var chunks []chunkOffset
	offset := int64(0)
	for {
		var header [4]byte
		n, err := in.ReadAt(header[:], offset)
		if n < 4 {
			if err == io.EOF || err == nil {
				return nil, ErrTruncatedLengthPrefix
			}
			return nil, err
		}
		length := binary.LittleEndian.Uint32(header[:])
		if length == 0 {
			break
		}
		chunks = append(chunks, chunkOffset{inputOffset: offset + 4, compressedLen: int64(length)})
		offset += 4 + int64(length)
	}
	return chunks, nil
}

// decompressState coordinates workers over the chunk table scanChunks
// built. Unlike compression, the output offset of chunk i is always
// i*chunkSize (every chunk but the last decompresses to exactly
// ChunkSize bytes), so there is no ordering gate: workers claim chunks
// via nextChunk and write wherever they land, fully in parallel.
type decompressState struct {
	in        io.ReaderAt
	out       io.WriterAt
	chunks    []chunkOffset
	chunkSize int64

	// lastDecompressed is computed once up front (DecompressFile needs
	// it anyway, to size and preallocate the output file) and handed to
	// whichever worker claims the last chunk, instead of decompressing
	// it twice.
	lastDecompressed []byte

	nextChunk atomic.Uint64
	errOnce   sync.Once
	err       error
}

func (s *decompressState) fail(err error) { s.errOnce.Do(func() { s.err = err }) }
func (s *decompressState) failed() error  { return s.err }

func (s *decompressState) run() {
	last := uint64(len(s.chunks) - 1)
	for {
		idx := s.nextChunk.Add(1) - 1
		if idx >= uint64(len(s.chunks)) || s.failed() != nil {
			return
		}

		decompressed := s.lastDecompressed
		if idx != last {
			c := s.chunks[idx]
			buf := make([]byte, c.compressedLen)
			if _, err := readFullAt(s.in, buf, c.inputOffset); err != nil {
				s.fail(err)
				return
			}
			out, err := block.DecompressBlock(buf)
			if err != nil {
				s.fail(err)
				return
			}
			decompressed = out
		}

		writeOffset := int64(idx) * s.chunkSize
		if len(decompressed) > 0 {
			if _, err := s.out.WriteAt(decompressed, writeOffset); err != nil {
				s.fail(err)
				return
			}
		}
		slog.Debug("pipeline: chunk decompressed", "chunk", idx, "out_len", len(decompressed))
	}
}

// DecompressFile reconstructs the original bytes from in's length-prefixed
// block stream, writing them to out. It preallocates out to the final
// size (golang.org/x/sys/unix.Fallocate when out is a regular *os.File)
// before any chunk is written, then decompresses every chunk in parallel.
func DecompressFile(opts *Options, in io.ReaderAt, out io.WriterAt) error {
	opts = opts.orDefault()

	chunks, err := scanChunks(in)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return truncateIfFile(out, 0)
	}

	last := chunks[len(chunks)-1]
	lastBuf := make([]byte, last.compressedLen)
	if _, err := readFullAt(in, lastBuf, last.inputOffset); err != nil {
		return err
	}
	lastDecompressed, err := block.DecompressBlock(lastBuf)
	if err != nil {
		return err
	}

	chunkSize := int64(opts.ChunkSize)
	fileSize := int64(len(chunks)-1)*chunkSize + int64(len(lastDecompressed))
	preallocate(out, fileSize)

	state := &decompressState{
		in:               in,
		out:              out,
		chunks:           chunks,
		chunkSize:        chunkSize,
		lastDecompressed: lastDecompressed,
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
	return truncateIfFile(out, fileSize)
}

func preallocate(out io.WriterAt, size int64) {
	if f, ok := out.(*os.File); ok {
		_ = unix.Fallocate(int(f.Fd()), 0, 0, size)
	}
}

func truncateIfFile(out io.WriterAt, size int64) error {
	if f, ok := out.(*os.File); ok {
		return f.Truncate(size)
	}
	return nil
}
