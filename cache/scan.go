package cache

import (
	"encoding/binary"
	"io"
)

// chunkInfo records where one compressed block starts in the underlying
// file and how long its body is, the same bookkeeping package pipeline's
// decompressor needs for its own parallel pass.
type chunkInfo struct {
	inputOffset   int64
	compressedLen int64
}

func scanChunks(in io.ReaderAt) ([]chunkInfo, error) {
	var chunks []chunkInfo
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
		chunks = append(chunks, chunkInfo{inputOffset: offset + 4, compressedLen: int64(length)})
		offset += 4 + int64(length)
	}
	return chunks, nil
}
