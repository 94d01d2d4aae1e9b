// SPDX-License-Identifier: GPL-2.0-only

package czip

import (
	"io"

	"github.com/czip-go/czip/block"
	"github.com/czip-go/czip/cache"
	"github.com/czip-go/czip/pipeline"
)

// CompressBlock compresses up to block's maximum chunk size (64KiB) of
// data into a single self-contained block.
func CompressBlock(src []byte) ([]byte, error) {
	return block.CompressBlock(src)
}

// DecompressBlock reverses CompressBlock.
func DecompressBlock(src []byte) ([]byte, error) {
	return block.DecompressBlock(src)
}

// CompressBound returns the largest number of bytes CompressBlock can
// produce for a source of the given length.
func CompressBound(sourceLen int) int {
	return block.CompressBound(sourceLen)
}

// CompressFile reads totalLen bytes from in and writes the compressed,
// length-prefixed block stream to out, splitting the input into chunks
// and compressing them concurrently. opts may be nil for the defaults.
func CompressFile(opts *PipelineOptions, in io.ReaderAt, totalLen int64, out io.WriterAt) error {
	return pipeline.CompressFile(opts, in, totalLen, out)
}

// DecompressFile reverses CompressFile, decompressing every chunk of in's
// block stream concurrently and writing the result to out.
func DecompressFile(opts *PipelineOptions, in io.ReaderAt, out io.WriterAt) error {
	return pipeline.DecompressFile(opts, in, out)
}

// NewCachedReader opens an already-compressed file for random access,
// decompressing and caching only the chunks a ReadAt call actually
// touches. opts may be nil for the defaults.
func NewCachedReader(in io.ReaderAt, opts *CacheOptions) (*cache.ReaderAt, error) {
	return cache.NewReaderAt(in, opts)
}
