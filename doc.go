// SPDX-License-Identifier: GPL-2.0-only

/*
Package czip implements a lossless general-purpose compressor built from
an LZ77 match finder, a canonical length-limited Huffman coder, and a
parallel file pipeline.

A single block — up to 64KiB of input — is compressed with CompressBlock
and decompressed with DecompressBlock:

	compressed, err := czip.CompressBlock(data)
	original, err := czip.DecompressBlock(compressed)

Larger inputs are split into fixed-size chunks and compressed
concurrently with CompressFile, producing a stream of length-prefixed
blocks that DecompressFile reverses:

	err := czip.CompressFile(nil, in, size, out)
	err := czip.DecompressFile(nil, compressedIn, out)

NewCachedReader opens an already compressed file for random-access reads,
decompressing and caching only the chunks a read touches.

The root package is a thin façade: block.CompressBlock/DecompressBlock,
pipeline.CompressFile/DecompressFile and cache.NewReaderAt do the actual
work, and are usable directly by callers who only need one of them.
*/
package czip
