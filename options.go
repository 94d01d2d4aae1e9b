// SPDX-License-Identifier: GPL-2.0-only

package czip

import (
	"github.com/czip-go/czip/cache"
	"github.com/czip-go/czip/pipeline"
)

// PipelineOptions configures CompressFile and DecompressFile: how many
// workers run concurrently and what chunk size they split a file into.
// A nil *PipelineOptions means the defaults (min(8, runtime.NumCPU())
// workers, a 64KiB chunk size).
type PipelineOptions = pipeline.Options

// DefaultPipelineOptions returns the options CompressFile/DecompressFile
// use when passed nil.
func DefaultPipelineOptions() *PipelineOptions {
	return pipeline.DefaultOptions()
}

// CacheOptions configures NewCachedReader: the chunk size the file was
// compressed with, and how many decompressed chunks to keep resident. A
// nil *CacheOptions means the defaults.
type CacheOptions = cache.Options

// DefaultCacheOptions returns the options NewCachedReader uses when
// passed nil.
func DefaultCacheOptions() *CacheOptions {
	return cache.DefaultOptions()
}
