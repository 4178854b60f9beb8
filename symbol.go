package huffman

import (
	"strconv"
)

// Symbol represents one element of the compressor's alphabet: either a
// literal byte value (0 through 255) or EndOfStream.  Negative symbols are
// not valid.
type Symbol int32

// EndOfStream is the synthetic end-of-stream marker.  It is always present
// in a code with a count of 1, it is always encoded last, and decoding stops
// as soon as it is seen.
const EndOfStream = Symbol(256)

// NumSymbols is the size of the alphabet, i.e. the maximum number of distinct
// symbols a code may contain.
const NumSymbols = 257

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsLiteral returns true iff this Symbol stands for a literal byte.
func (s Symbol) IsLiteral() bool {
	return s >= 0 && s < EndOfStream
}

// IsValid returns true iff this Symbol belongs to the alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= EndOfStream
}

// String returns the decimal form used in the compressed file header.
func (s Symbol) String() string {
	return strconv.FormatInt(int64(s), 10)
}
