// Package lzmatch implements the greedy, single-candidate LZ77 match
// finder: a 2^16-entry direct-mapped hash table over 4-byte fingerprints,
// one candidate per bucket, no lazy matching and no chaining past the
// most recent occurrence. It emits a symbol per literal or match (in the
// 385-symbol alphabet the Huffman coder works over) and the match length
// and distance extra bits, packed with internal/bitstream starting at a
// caller-chosen absolute bit offset.
package lzmatch
