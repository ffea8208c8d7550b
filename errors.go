package fetchfile

import (
	"errors"
	"fmt"

	"github.com/picatz/fetchfile/internal/storage"
)

var (
	// ErrIO is matched by every *IOError.
	ErrIO = storage.ErrIO

	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("fetchfile: failed to decode value")

	// ErrEncode is matched by every *EncodeError.
	ErrEncode = errors.New("fetchfile: failed to encode value")

	// ErrUnknownFormat is returned for format names and values that do not
	// map to a codec.
	ErrUnknownFormat = errors.New("fetchfile: unknown format")
)

var (
	errEmptyDocument = errors.New("empty document")
	errNullDocument  = errors.New("document is null")
)

// IOError reports that a file could not be opened, read, written or synced.
// It is always returned to the caller of Load and Save.
type IOError = storage.Error

// DecodeError reports bytes that do not match the shape expected by a codec.
// Load and FetchOrDefault absorb it and return the type's default instead.
type DecodeError struct {
	Format Format
	// Path is empty when the error comes straight from a codec.
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to decode %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("failed to decode %s from %q: %v", e.Format, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// EncodeError reports a value that cannot be represented in a format. It is
// always returned to the caller of Save.
type EncodeError struct {
	Format Format
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrEncode.
func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

// decodeError attaches path to err, wrapping errors from codecs that do not
// report a *DecodeError themselves.
func decodeError(format Format, path string, err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		return &DecodeError{Format: de.Format, Path: path, Err: de.Err}
	}
	return &DecodeError{Format: format, Path: path, Err: err}
}

// encodeError wraps errors from codecs that do not report an *EncodeError
// themselves.
func encodeError(format Format, err error) error {
	var ee *EncodeError
	if errors.As(err, &ee) {
		return err
	}
	return &EncodeError{Format: format, Err: err}
}
