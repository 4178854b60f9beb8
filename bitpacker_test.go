package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestPackBits(t *testing.T) {
	type testRow struct {
		bits   string
		packed []byte
		rest   string
	}

	testData := [...]testRow{
		{bits: "", packed: nil, rest: ""},
		{bits: "101", packed: nil, rest: "101"},
		{bits: "01000001", packed: []byte{0x41}, rest: ""},
		{bits: "0100000101", packed: []byte{0x41}, rest: "01"},
		{bits: "1111111100000000", packed: []byte{0xff, 0x00}, rest: ""},
		{bits: "10000000000000011", packed: []byte{0x80, 0x01}, rest: "1"},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			packed, rest := PackBits(nil, []byte(row.bits))
			if !bytes.Equal(row.packed, packed) {
				t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", row.packed, packed)
			}
			if row.rest != string(rest) {
				t.Errorf("wrong remainder:\n\texpect: %q\n\tactual: %q", row.rest, rest)
			}
		})
	}
}

func TestBitPacker(t *testing.T) {
	var buf bytes.Buffer
	p := NewBitPacker(&buf, 8)
	for _, hc := range []Code{"1", "1", "1", "00", "01"} {
		if err := p.WriteCode(hc); err != nil {
			t.Fatalf("WriteCode failed: %v", err)
		}
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	expect := []byte{0xe2}
	if actual := buf.Bytes(); !bytes.Equal(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
	if n := p.Written(); n != 1 {
		t.Errorf("expected 1 byte written, got %d", n)
	}
}

func TestBitPacker_Thresholds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var codes []Code
	var all strings.Builder
	for i := 0; i < 500; i++ {
		var hc Code
		for n := 1 + rng.Intn(20); n > 0; n-- {
			hc = hc.Append(rng.Intn(2) == 1)
		}
		codes = append(codes, hc)
		all.WriteString(string(hc))
	}

	bits := all.String()
	if pad := len(bits) % 8; pad != 0 {
		bits += strings.Repeat("0", 8-pad)
	}
	expect, _ := PackBits(nil, []byte(bits))

	for _, threshold := range []int{0, 8, 10, 13, 64, 4096} {
		t.Run(fmt.Sprint(threshold), func(t *testing.T) {
			var buf bytes.Buffer
			p := NewBitPacker(&buf, threshold)
			for _, hc := range codes {
				if err := p.WriteCode(hc); err != nil {
					t.Fatalf("WriteCode failed: %v", err)
				}
			}
			if err := p.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}
			if !bytes.Equal(expect, buf.Bytes()) {
				t.Errorf("wrong output for threshold %d", threshold)
			}
			if n := p.Written(); n != int64(len(expect)) {
				t.Errorf("expected %d bytes written, got %d", len(expect), n)
			}
		})
	}
}

func makeTestTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := RebuildTree([]CodeEntry{
		{Symbol: 'a', Code: "1"},
		{Symbol: 'b', Code: "00"},
		{Symbol: EndOfStream, Code: "01"},
	})
	if err != nil {
		t.Fatalf("RebuildTree failed: %v", err)
	}
	return tree
}

func TestTreeWalker(t *testing.T) {
	tw := newTreeWalker(makeTestTree(t))

	type testRow struct {
		bit    bool
		symbol Symbol
		state  walkState
	}

	testData := [...]testRow{
		{bit: true, symbol: 'a', state: atRoot},
		{bit: false, symbol: InvalidSymbol, state: atInternal},
		{bit: false, symbol: 'b', state: atRoot},
		{bit: false, symbol: InvalidSymbol, state: atInternal},
		{bit: true, symbol: EndOfStream, state: terminated},
	}
	for i, row := range testData {
		symbol, err := tw.step(row.bit)
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if symbol != row.symbol {
			t.Errorf("step %d: expected symbol %d, got %d", i, row.symbol, symbol)
		}
		if tw.state != row.state {
			t.Errorf("step %d: expected state %v, got %v", i, row.state, tw.state)
		}
	}
}

func TestUnpack(t *testing.T) {
	tree := makeTestTree(t)

	type testRow struct {
		name   string
		packed []byte
		expect string
		err    error
	}

	testData := [...]testRow{
		{name: "exact", packed: []byte{0xe2}, expect: "aaab"},
		{name: "padding-ignored", packed: []byte{0xe3}, expect: "aaab"},
		{name: "trailing-bytes-ignored", packed: []byte{0xe2, 0xff, 0xff}, expect: "aaab"},
		{name: "eos-only", packed: []byte{0x40}, expect: ""},
		{name: "three-bytes", packed: []byte{0x00, 0xff, 0xf4}, expect: "bbbbaaaaaaaaaaaa"},
		{name: "truncated", packed: []byte{0xff}, err: ErrCorrupt},
		{name: "empty", packed: nil, err: ErrCorrupt},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Unpack(&out, bytes.NewReader(row.packed), tree)
			if row.err != nil {
				if !errors.Is(err, row.err) {
					t.Fatalf("expected errors.Is(%v), got %v", row.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if actual := out.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestUnpack_MissingChild(t *testing.T) {
	tree, err := RebuildTree([]CodeEntry{{Symbol: 'a', Code: "00"}, {Symbol: EndOfStream, Code: "01"}})
	if err != nil {
		t.Fatalf("RebuildTree failed: %v", err)
	}

	var out bytes.Buffer
	err = Unpack(&out, bytes.NewReader([]byte{0x80}), tree)
	if KindOf(err) != CorruptError {
		t.Errorf("expected %v, got %v", CorruptError, err)
	}
}
