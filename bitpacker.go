package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// PackBits converts the longest prefix of bits whose length is a multiple of
// 8 into bytes, appending them to dst.  bits holds one '0' or '1' character
// per bit; the first bit of each group of 8 becomes the most significant bit
// of its byte.  The unconsumed remainder (fewer than 8 bits) is returned as
// rest, which aliases bits.
func PackBits(dst []byte, bits []byte) (out []byte, rest []byte) {
	n := len(bits) &^ 7
	for i := 0; i < n; i += 8 {
		var ch byte
		for _, bit := range bits[i : i+8] {
			assert.Assertf(bit == '0' || bit == '1', "invalid bit character %q", bit)
			ch = (ch << 1) | (bit - '0')
		}
		dst = append(dst, ch)
	}
	return dst, bits[n:]
}

// BitPacker accumulates Codes as text and writes them out as packed bytes.
// Whenever more than threshold bits are pending, every complete byte is
// emitted and only the remainder is kept.  Close writes the final partial
// byte, padded with zero bits.
type BitPacker struct {
	w         *bitio.Writer
	pending   []byte
	scratch   []byte
	threshold int
	written   int64
}

// NewBitPacker returns a BitPacker writing to w.  A threshold less than 8 is
// raised to 8.
func NewBitPacker(w io.Writer, threshold int) *BitPacker {
	if threshold < 8 {
		threshold = 8
	}
	return &BitPacker{
		w:         bitio.NewWriter(w),
		pending:   make([]byte, 0, threshold+64),
		threshold: threshold,
	}
}

// WriteCode queues the bits of hc for output.
func (p *BitPacker) WriteCode(hc Code) error {
	p.pending = append(p.pending, string(hc)...)
	if len(p.pending) > p.threshold {
		return p.flush()
	}
	return nil
}

func (p *BitPacker) flush() error {
	var rest []byte
	p.scratch, rest = PackBits(p.scratch[:0], p.pending)
	p.pending = p.pending[:copy(p.pending, rest)]
	if len(p.scratch) == 0 {
		return nil
	}
	n, err := p.w.Write(p.scratch)
	p.written += int64(n)
	return err
}

// Close writes every pending bit, pads the last byte with zeros, and flushes
// the output.  It does not close the underlying writer.
func (p *BitPacker) Close() error {
	if err := p.flush(); err != nil {
		return err
	}
	for _, bit := range p.pending {
		if err := p.w.WriteBool(bit == '1'); err != nil {
			return err
		}
	}
	if len(p.pending) != 0 {
		p.written++
	}
	p.pending = p.pending[:0]
	return p.w.Close()
}

// Written returns the number of packed bytes produced so far.
func (p *BitPacker) Written() int64 {
	return p.written
}

// type walkState {{{

type walkState uint8

const (
	atRoot walkState = iota
	atInternal
	terminated
)

var walkStateNames = [...]string{
	atRoot:     "AT_ROOT",
	atInternal: "AT_INTERNAL",
	terminated: "TERMINATED",
}

func (s walkState) String() string {
	return walkStateNames[s]
}

// }}}

// treeWalker follows one bit at a time from the root of a Tree down to a
// leaf.  Reaching a literal returns the walker to the root; reaching
// EndOfStream terminates it, after which no further bits are accepted.
type treeWalker struct {
	tree  *Tree
	node  int32
	state walkState
}

func newTreeWalker(t *Tree) treeWalker {
	return treeWalker{tree: t, node: t.root, state: atRoot}
}

// step consumes one bit.  It returns the Symbol of the leaf reached, or
// InvalidSymbol if the walk is still at an internal node.
func (tw *treeWalker) step(bit bool) (Symbol, error) {
	assert.Assertf(tw.state != terminated, "treeWalker.step called in state %v", tw.state)

	next := tw.tree.nodes[tw.node].left
	if bit {
		next = tw.tree.nodes[tw.node].right
	}
	if next == NoNode {
		return InvalidSymbol, corruptf("unpack", "bitstream follows a code that is not in the header")
	}

	symbol := tw.tree.nodes[next].symbol
	switch {
	case symbol == EndOfStream:
		tw.node = tw.tree.root
		tw.state = terminated
	case symbol >= 0:
		tw.node = tw.tree.root
		tw.state = atRoot
	default:
		tw.node = next
		tw.state = atInternal
	}
	return symbol, nil
}

// Unpack reads packed bits from r, most significant bit first, walking t
// and writing each decoded literal to w.  It stops as soon as EndOfStream is
// decoded; any bits that follow are padding and are never read.  Running
// out of input before EndOfStream is a CorruptError.
func Unpack(w io.ByteWriter, r io.Reader, t *Tree) error {
	br := bitio.NewReader(r)
	tw := newTreeWalker(t)
	for tw.state != terminated {
		bit, err := br.ReadBool()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return corruptf("unpack", "bitstream ended before the end-of-stream marker")
		}
		if err != nil {
			return ioError("unpack", err)
		}

		symbol, err := tw.step(bit)
		if err != nil {
			return err
		}
		if symbol.IsLiteral() {
			if err := w.WriteByte(byte(symbol)); err != nil {
				return ioError("unpack", err)
			}
		}
	}
	return nil
}
