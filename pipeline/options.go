// SPDX-License-Identifier: GPL-2.0-only

package pipeline

import (
	"runtime"

	"github.com/czip-go/czip/internal/format"
)

// maxWorkers mirrors the original's MAX_PROCS: a hard cap on how many
// concurrent workers CompressFile/DecompressFile will ever start,
// regardless of NumCPU or a caller-supplied NumWorkers.
const maxWorkers = 8

// Options configures the file pipeline.
type Options struct {
	// NumWorkers is how many goroutines compress or decompress chunks
	// concurrently. 0 means min(maxWorkers, runtime.NumCPU()).
	NumWorkers int
	// ChunkSize overrides format.MaxCompressLen, mainly for tests that
	// want to exercise multiple chunks without a 64KiB fixture. 0 means
	// the default.
	ChunkSize int
}

// DefaultOptions returns the options CompressFile/DecompressFile use when
// passed nil: min(maxWorkers, runtime.NumCPU()) workers, the standard
// chunk size.
func DefaultOptions() *Options {
	return &Options{NumWorkers: defaultWorkers(), ChunkSize: format.MaxCompressLen}
}

func defaultWorkers() int {
	n := runtime.NumCPU()
	if n > maxWorkers {
		return maxWorkers
	}
	if n < 1 {
		return 1
	}
	return n
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.NumWorkers <= 0 {
		out.NumWorkers = defaultWorkers()
	}
	if out.ChunkSize <= 0 {
		out.ChunkSize = format.MaxCompressLen
	}
	return &out
}
