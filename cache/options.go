// SPDX-License-Identifier: GPL-2.0-only

package cache

import "github.com/czip-go/czip/internal/format"

// Options configures the cached reader.
type Options struct {
	// ChunkSize must match whatever PipelineOptions.ChunkSize the file
	// was compressed with. 0 means format.MaxCompressLen, the default
	// every pipeline.Options also defaults to.
	ChunkSize int
	// MaxChunks bounds how many decompressed chunks are kept resident at
	// once. 0 means DefaultMaxChunks.
	MaxChunks int
}

// DefaultMaxChunks caps the cache at 64 chunks, ~4MiB of decompressed
// data at the default chunk size — enough to keep a sequential scan warm
// without holding an entire large file in memory.
const DefaultMaxChunks = 64

// DefaultOptions returns the default cache configuration.
func DefaultOptions() *Options {
	return &Options{ChunkSize: format.MaxCompressLen, MaxChunks: DefaultMaxChunks}
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.ChunkSize <= 0 {
		out.ChunkSize = format.MaxCompressLen
	}
	if out.MaxChunks <= 0 {
		out.MaxChunks = DefaultMaxChunks
	}
	return &out
}
