package huffman

import (
	"strconv"
	"strings"
)

// Code represents a sequence of bits, stored as text: one '0' or '1'
// character per bit, first bit first.  This is the same form in which codes
// are recorded in the compressed file header.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) bool {
	return hc[i] == '1'
}

// Append returns a new Code with one more bit at the end.
func (hc Code) Append(bit bool) Code {
	if bit {
		return hc + "1"
	}
	return hc + "0"
}

// IsValid returns true iff this Code is non-empty and consists only of the
// characters '0' and '1'.
func (hc Code) IsValid() bool {
	if len(hc) == 0 {
		return false
	}
	for i := 0; i < len(hc); i++ {
		if ch := hc[i]; ch != '0' && ch != '1' {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}
