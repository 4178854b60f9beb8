package huffman

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_String(t *testing.T) {
	type testRow struct {
		err    error
		expect string
	}

	testData := [...]testRow{
		{
			err:    corruptf("read header", "header is truncated"),
			expect: "read header: corrupt input: compressed file is corrupt or invalid: header is truncated",
		},
		{
			err:    &Error{Kind: BuildError, Err: ErrEmptyFrequencies},
			expect: "build error: cannot build a Huffman tree from zero symbols",
		},
		{
			err:    ioError("compress", errors.New("disk full")),
			expect: "compress: I/O error: disk full",
		},
	}
	for _, row := range testData {
		if actual := row.err.Error(); actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", corruptf("unpack", "x"))
	if kind := KindOf(wrapped); kind != CorruptError {
		t.Errorf("expected %v, got %v", CorruptError, kind)
	}
	if !errors.Is(wrapped, ErrCorrupt) {
		t.Errorf("expected errors.Is(ErrCorrupt)")
	}
	if kind := KindOf(errors.New("plain")); kind != 0 {
		t.Errorf("expected 0, got %v", kind)
	}
	if kind := KindOf(nil); kind != 0 {
		t.Errorf("expected 0, got %v", kind)
	}
	if s := ErrorKind(99).String(); s != "ErrorKind(99)" {
		t.Errorf("expected ErrorKind(99), got %s", s)
	}
}
