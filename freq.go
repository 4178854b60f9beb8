package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// FrequencyEntry pairs a Symbol with its number of occurrences.
type FrequencyEntry struct {
	Symbol Symbol
	Count  uint64
}

// FrequencyTable counts the occurrences of each byte value in an input.
// EndOfStream is implicitly present with a count of exactly 1.
//
// The zero value is ready to use and represents an empty input.
//
type FrequencyTable struct {
	counts [256]uint64
	total  uint64
}

// CountFrequencies reads r to EOF, exactly once, and returns the resulting
// FrequencyTable.  Empty input is legal.
func CountFrequencies(r io.Reader) (*FrequencyTable, error) {
	ft := new(FrequencyTable)
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ioError("count frequencies", err)
		}
		ft.Add(ch)
	}
	return ft, nil
}

// Add records one occurrence of the byte ch.
func (ft *FrequencyTable) Add(ch byte) {
	ft.counts[ch]++
	ft.total++
}

// Count returns the number of occurrences of symbol.  The count for
// EndOfStream is always 1.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	switch {
	case symbol == EndOfStream:
		return 1
	case symbol.IsLiteral():
		return ft.counts[symbol]
	default:
		return 0
	}
}

// Total returns the number of input bytes counted so far.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Len returns the number of distinct symbols with a non-zero count,
// including EndOfStream.
func (ft *FrequencyTable) Len() int {
	n := 1
	for _, count := range ft.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Entries lists every symbol with a non-zero count, in ascending symbol
// order.  EndOfStream is always last.
func (ft *FrequencyTable) Entries() []FrequencyEntry {
	out := make([]FrequencyEntry, 0, ft.Len())
	for ch, count := range ft.counts {
		if count != 0 {
			out = append(out, FrequencyEntry{Symbol(ch), count})
		}
	}
	out = append(out, FrequencyEntry{EndOfStream, 1})
	assert.Assertf(len(out) <= NumSymbols, "%d distinct symbols > NumSymbols %d", len(out), NumSymbols)
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, entry := range ft.Entries() {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", entry.Symbol, entry.Count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
