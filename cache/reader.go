// SPDX-License-Identifier: GPL-2.0-only

package cache

import (
	"encoding/binary"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"

	"github.com/czip-go/czip/block"
)

// ReaderAt is a random-access view over a compressed file: ReadAt
// decompresses whichever chunk a byte range falls in and serves the
// bytes out of it, caching the decompressed chunk so a later read of a
// nearby range is free.
type ReaderAt struct {
	in        io.ReaderAt
	chunks    []chunkInfo
	chunkSize int64
	totalSize int64

	mu    sync.Mutex
	cache *tinylfu.Cache
}

// NewReaderAt scans in's block stream and prepares a cached reader over
// the decompressed bytes it represents. opts may be nil for the defaults.
func NewReaderAt(in io.ReaderAt, opts *Options) (*ReaderAt, error) {
	opts = opts.orDefault()

	chunks, err := scanChunks(in)
	if err != nil {
		return nil, err
	}

	r := &ReaderAt{
		in:        in,
		chunks:    chunks,
		chunkSize: int64(opts.ChunkSize),
		cache:     tinylfu.New(opts.MaxChunks, opts.MaxChunks*10),
	}

	if len(chunks) > 0 {
		last, err := r.decompressChunk(len(chunks) - 1)
		if err != nil {
			return nil, err
		}
		r.totalSize = int64(len(chunks)-1)*r.chunkSize + int64(len(last))
	}

	return r, nil
}

// Size reports the total decompressed length.
func (r *ReaderAt) Size() int64 { return r.totalSize }

// ReadAt implements io.ReaderAt over the decompressed file.
func (r *ReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= r.totalSize {
		return 0, io.EOF
	}

	total := 0
	for total < len(p) {
		pos := off + int64(total)
		if pos >= r.totalSize {
			break
		}
		idx := int(pos / r.chunkSize)
		chunkStart := int64(idx) * r.chunkSize

		data, err := r.decompressChunk(idx)
		if err != nil {
			return total, err
		}

		within := pos - chunkStart
		if within >= int64(len(data)) {
			break
		}
		n := copy(p[total:], data[within:])
		total += n
	}

	if total < len(p) {
		return total, io.EOF
	}
	return total, nil
}

func (r *ReaderAt) decompressChunk(idx int) ([]byte, error) {
	key := cacheKey(idx)

	r.mu.Lock()
	if v, ok := r.cache.Get(key); ok {
		r.mu.Unlock()
		return v.([]byte), nil
	}
	r.mu.Unlock()

	c := r.chunks[idx]
	buf := make([]byte, c.compressedLen)
	if _, err := r.in.ReadAt(buf, c.inputOffset); err != nil && err != io.EOF {
		return nil, err
	}
	out, err := block.DecompressBlock(buf)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache.Add(key, out)
	r.mu.Unlock()

	slog.Debug("cache: chunk decompressed", "chunk", idx, "len", len(out))
	return out, nil
}

// cacheKey hashes a chunk index into the string key tinylfu expects,
// using xxhash the same way the example pack's caching reader derives a
// fast digest for its eviction policy.
func cacheKey(idx int) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(idx))
	return strconv.FormatUint(xxhash.Sum64(buf[:]), 16)
}
