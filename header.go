package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
)

// WriteHeader writes the compressed file header for ct: the number of
// symbols on one line, then one "<symbol> <code>" line per symbol in
// ascending symbol order.
func WriteHeader(w io.Writer, ct *CodeTable) error {
	var buf bytes.Buffer
	buf.WriteString(strconv.Itoa(ct.Len()))
	buf.WriteByte('\n')
	for _, entry := range ct.Entries() {
		buf.WriteString(entry.Symbol.String())
		buf.WriteByte(' ')
		buf.WriteString(string(entry.Code))
		buf.WriteByte('\n')
	}
	if _, err := buf.WriteTo(w); err != nil {
		return ioError("write header", err)
	}
	return nil
}

// ReadHeader parses a compressed file header, leaving r positioned at the
// first byte of packed data.  Codes are returned as written; they are
// validated by RebuildTree.
func ReadHeader(r *bufio.Reader) ([]CodeEntry, error) {
	const op = "read header"

	line, err := readLine(r, op)
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(line)
	if err != nil {
		return nil, corruptf(op, "symbol count %q is not a decimal integer", line)
	}
	if count < 1 || count > NumSymbols {
		return nil, corruptf(op, "symbol count %d outside 1 .. %d", count, NumSymbols)
	}

	entries := make([]CodeEntry, 0, count)
	hasEndOfStream := false
	for i := 0; i < count; i++ {
		line, err := readLine(r, op)
		if err != nil {
			return nil, err
		}

		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			return nil, corruptf(op, "code line %q has no separator", line)
		}
		id, err := strconv.ParseInt(line[:sp], 10, 32)
		if err != nil {
			return nil, corruptf(op, "symbol %q is not a decimal integer", line[:sp])
		}

		symbol := Symbol(id)
		if symbol == EndOfStream {
			hasEndOfStream = true
		}
		entries = append(entries, CodeEntry{Symbol: symbol, Code: Code(line[sp+1:])})
	}
	if !hasEndOfStream {
		return nil, corruptf(op, "no code for the end-of-stream marker")
	}
	return entries, nil
}

func readLine(r *bufio.Reader, op string) (string, error) {
	raw, err := r.ReadSlice('\n')
	switch {
	case err == nil:
		return string(raw[:len(raw)-1]), nil
	case err == io.EOF:
		return "", corruptf(op, "header is truncated")
	case errors.Is(err, bufio.ErrBufferFull):
		return "", corruptf(op, "header line is too long")
	default:
		return "", ioError(op, err)
	}
}
