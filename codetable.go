package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeEntry pairs a Symbol with its Code.
type CodeEntry struct {
	Symbol Symbol
	Code   Code
}

// CodeTable maps each Symbol in a Tree to its Code.
type CodeTable struct {
	codes [NumSymbols]Code
	size  int
}

// NewCodeTable walks the tree and assigns each leaf the path leading to it:
// '0' for every left edge and '1' for every right edge.  Every leaf receives
// exactly one non-empty code, and no code is a prefix of another.
func NewCodeTable(t *Tree) *CodeTable {
	ct := new(CodeTable)
	t.walk(func(index int32, path Code) {
		symbol := t.nodes[index].symbol
		if symbol < 0 {
			return
		}
		assert.Assertf(path.Size() > 0, "symbol %d was assigned an empty code", symbol)
		assert.Assertf(ct.codes[symbol] == "", "symbol %d appears twice in the tree", symbol)
		ct.codes[symbol] = path
		ct.size++
	})
	return ct
}

// Lookup returns the Code for symbol, or false if symbol has no code.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() {
		return "", false
	}
	hc := ct.codes[symbol]
	return hc, hc != ""
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return ct.size
}

// Entries lists every (Symbol, Code) pair in ascending symbol order.
func (ct *CodeTable) Entries() []CodeEntry {
	out := make([]CodeEntry, 0, ct.size)
	for symbol, hc := range ct.codes {
		if hc != "" {
			out = append(out, CodeEntry{Symbol(symbol), hc})
		}
	}
	return out
}

// WeightedLength returns the sum of count × code size over every symbol in
// ft, i.e. the number of bits needed to encode the input ft was built from,
// EndOfStream included.
func (ct *CodeTable) WeightedLength(ft *FrequencyTable) uint64 {
	var sum uint64
	for _, entry := range ft.Entries() {
		sum += entry.Count * uint64(ct.codes[entry.Symbol].Size())
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, entry := range ct.Entries() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", entry.Symbol, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// RebuildTree reconstructs a Tree from (Symbol, Code) pairs, such as those
// read from a compressed file header.  Each code is traced from the shared
// root, creating internal nodes as needed, and its symbol is placed at the
// end of the path.
//
// Any inconsistency is reported as a CorruptError: a code containing
// characters other than '0' and '1', an empty code, a code that passes
// through an existing leaf, a code that ends at an existing node, or a
// symbol that is out of range or repeated.
//
func RebuildTree(entries []CodeEntry) (*Tree, error) {
	const op = "rebuild tree"

	if len(entries) > NumSymbols {
		return nil, corruptf(op, "%d symbols, max %d", len(entries), NumSymbols)
	}

	var seen [NumSymbols]bool
	t := &Tree{nodes: make([]treeNode, 0, 2*len(entries)+1)}
	t.root = t.newInternal(NoNode, NoNode, 0)

	for _, entry := range entries {
		symbol, hc := entry.Symbol, entry.Code
		if !symbol.IsValid() {
			return nil, corruptf(op, "symbol %d out of range", symbol)
		}
		if seen[symbol] {
			return nil, corruptf(op, "duplicate symbol %d", symbol)
		}
		if !hc.IsValid() {
			return nil, corruptf(op, "code %s for symbol %d is not a non-empty string of 0s and 1s", hc, symbol)
		}
		seen[symbol] = true

		index := t.root
		last := hc.Size() - 1
		for i := 0; i <= last; i++ {
			child := &t.nodes[index].left
			if hc.Bit(i) {
				child = &t.nodes[index].right
			}

			if *child == NoNode {
				var next int32
				if i == last {
					next = t.newLeaf(symbol, 0)
				} else {
					next = t.newInternal(NoNode, NoNode, 0)
				}
				// newLeaf/newInternal may have moved the arena
				if hc.Bit(i) {
					t.nodes[index].right = next
				} else {
					t.nodes[index].left = next
				}
				index = next
				continue
			}

			if i == last {
				return nil, corruptf(op, "code %s for symbol %d collides with another code", hc, symbol)
			}
			if t.nodes[*child].symbol >= 0 {
				return nil, corruptf(op, "code %s for symbol %d has another code as its prefix", hc, symbol)
			}
			index = *child
		}
	}
	return t, nil
}
