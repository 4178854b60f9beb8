package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// DefaultFlushThreshold is the number of pending bits above which Compress
// emits packed bytes.
const DefaultFlushThreshold = 4096

// CompressOptions tunes Compress.  The zero value selects the defaults.
type CompressOptions struct {
	// FlushThreshold is the number of pending bits above which complete
	// bytes are written out.  It does not affect the output.
	FlushThreshold int
}

func (opts CompressOptions) flushThreshold() int {
	if opts.FlushThreshold <= 0 {
		return DefaultFlushThreshold
	}
	return opts.FlushThreshold
}

// Compress reads src twice, once to count byte frequencies and once to
// encode it, and writes the compressed file to dst.  src is returned to its
// starting offset between the two passes.
//
// Each call builds its own tree and code table; Compress may be called
// concurrently on different sources.
//
func Compress(dst io.Writer, src io.ReadSeeker) error {
	return CompressWithOptions(dst, src, CompressOptions{})
}

// CompressWithOptions is Compress with explicit options.
func CompressWithOptions(dst io.Writer, src io.ReadSeeker, opts CompressOptions) error {
	const op = "compress"

	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return ioError(op, err)
	}

	ft, err := CountFrequencies(src)
	if err != nil {
		return err
	}

	t, err := BuildTree(ft.Entries())
	if err != nil {
		return err
	}
	ct := NewCodeTable(t)

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return ioError(op, err)
	}

	bw := bufio.NewWriter(dst)
	if err := WriteHeader(bw, ct); err != nil {
		return err
	}

	packer := NewBitPacker(bw, opts.flushThreshold())
	br := bufio.NewReader(src)
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ioError(op, err)
		}

		hc, ok := ct.Lookup(Symbol(ch))
		if !ok {
			return &Error{Kind: EncodingError, Op: op, Err: fmt.Errorf("%w: byte 0x%02x", ErrNoCode, ch)}
		}
		if err := packer.WriteCode(hc); err != nil {
			return ioError(op, err)
		}
	}

	hc, ok := ct.Lookup(EndOfStream)
	if !ok {
		return &Error{Kind: EncodingError, Op: op, Err: fmt.Errorf("%w: end-of-stream marker", ErrNoCode)}
	}
	if err := packer.WriteCode(hc); err != nil {
		return ioError(op, err)
	}
	if err := packer.Close(); err != nil {
		return ioError(op, err)
	}
	if err := bw.Flush(); err != nil {
		return ioError(op, err)
	}
	return nil
}

// Decompress reads a compressed file from src and writes the original bytes
// to dst.  Input following the end-of-stream marker is ignored.
func Decompress(dst io.Writer, src io.Reader) error {
	br := bufio.NewReader(src)
	entries, err := ReadHeader(br)
	if err != nil {
		return err
	}

	t, err := RebuildTree(entries)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(dst)
	if err := Unpack(bw, br, t); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return ioError("decompress", err)
	}
	return nil
}

// CompressBytes compresses data in memory.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes decompresses data in memory.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
