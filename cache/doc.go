// Package cache provides a random-access io.ReaderAt over an already
// compressed file: it decompresses the chunk containing a requested byte
// range on demand and keeps recently used chunks in a bounded cache, so
// repeated reads of the same region don't re-run the block codec. This is
// additive to the wire format (it changes nothing about how a file is
// written) and does not provide random access within a single block.
package cache
