// Package huffman builds canonical, length-limited Huffman codes and the
// direct-mapped lookup tables used to decode them one symbol at a time
// from a bit-reader. It is shared by the 385-symbol primary alphabet
// (MaxCodeLength 9) and the 13-symbol book alphabet (MaxBookCodeLength 7):
// both are just this algorithm parameterized by alphabet size and a
// length cap.
package huffman
