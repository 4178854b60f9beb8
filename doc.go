// Package huffman implements a static Huffman file compressor.  A single
// pass over the input counts byte frequencies, a Huffman tree is built from
// them, and a second pass emits one code per byte followed by the code for a
// synthetic end-of-stream symbol.
//
// The compressed format is a text header followed by packed bits:
//
//     <symbol count>\n
//     <symbol> <code>\n        (one line per symbol, ascending)
//     ...
//     <packed codes, most significant bit first, zero padded>
//
// Symbols 0 through 255 are literal bytes and 256 is EndOfStream.  Codes are
// written as strings of '0' and '1'.  The length of the original input is not
// stored; decoding stops at EndOfStream.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
