package huffman

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures reported by this package.
type ErrorKind uint8

const (
	// IOError means the input could not be read or the output could not
	// be written.
	IOError ErrorKind = iota + 1

	// BuildError means a tree was requested from zero symbols.
	BuildError

	// EncodingError means a byte of input had no code in the code table.
	EncodingError

	// CorruptError means a compressed file is corrupt or invalid.
	CorruptError
)

var kindNames = [...]string{
	IOError:       "I/O error",
	BuildError:    "build error",
	EncodingError: "encoding error",
	CorruptError:  "corrupt input",
}

// String returns a short human-readable name for this ErrorKind.
func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

var (
	// ErrCorrupt is wrapped by every CorruptError.
	ErrCorrupt = errors.New("compressed file is corrupt or invalid")

	// ErrEmptyFrequencies is returned by BuildTree when given no entries.
	ErrEmptyFrequencies = errors.New("cannot build a Huffman tree from zero symbols")

	// ErrNoCode is returned when a symbol to be encoded has no code.
	ErrNoCode = errors.New("symbol has no Huffman code")

	// ErrTooManySymbols is returned when more than NumSymbols distinct
	// symbols are present.
	ErrTooManySymbols = errors.New("too many distinct symbols")
)

// Error is the error type returned by this package.  Every failure is
// terminal for the operation that produced it.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// Error fulfills the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

var _ error = (*Error)(nil)

// KindOf returns the ErrorKind of err, or 0 if err is nil or did not come
// from this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func ioError(op string, err error) error {
	return &Error{Kind: IOError, Op: op, Err: err}
}

// corruptf builds a CorruptError whose cause satisfies errors.Is(_, ErrCorrupt).
func corruptf(op string, format string, args ...interface{}) error {
	return &Error{
		Kind: CorruptError,
		Op:   op,
		Err:  fmt.Errorf("%w: "+format, append([]interface{}{ErrCorrupt}, args...)...),
	}
}
