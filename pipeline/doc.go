// Package pipeline implements the parallel file codec: CompressFile and
// DecompressFile split a file into fixed-size chunks (format.MaxCompressLen
// bytes, save for the last), compress or decompress each chunk with
// package block, and write the length-prefixed block stream spec.md §3
// describes, terminated by a zero-length block.
//
// Workers coordinate through a small set of atomic counters rather than
// a lock: next_chunk for work-stealing input assignment, and a
// claim-then-advance gate on next_write that keeps compressed blocks
// landing on disk in chunk order even though the compression work itself
// runs out of order. This replaces the original's forked worker
// processes sharing an anonymous mapping with goroutines sharing the
// same counters — same ordering contract, no process or mmap management.
package pipeline
