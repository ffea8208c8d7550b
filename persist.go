package fetchfile

import (
	"errors"
	"fmt"

	"github.com/picatz/fetchfile/internal/storage"
)

// Defaulter is implemented by types with a deterministic default value.
//
// Default is called on the zero value of V, so it must use a value receiver
// and must not depend on the receiver's fields.
type Defaulter[V any] interface {
	Default() V
}

// Persistable is implemented by types that can be saved to and loaded from a
// file with their own active codec.
//
// Like Default, Codec is called on the zero value of V.
type Persistable[V any] interface {
	Defaulter[V]

	// Codec returns the codec used by Load, Save and FetchOrDefault.
	Codec() Codec[V]
}

func defaultOf[V Defaulter[V]]() V {
	var zero V
	return zero.Default()
}

func activeCodec[V Persistable[V]]() Codec[V] {
	var zero V
	return zero.Codec()
}

// Load reads the file at path and decodes it with the active codec of V.
//
// A file that cannot be opened or read returns an *IOError. A file that
// cannot be decoded is not an error: the default value of V is returned
// instead, and the failure is only reported to the logger set with
// WithLogger.
func Load[V Persistable[V]](path string, opts ...Option) (V, error) {
	return LoadWith(path, activeCodec[V](), opts...)
}

// LoadBinary is Load using the Binary codec regardless of the active codec.
func LoadBinary[V Defaulter[V]](path string, opts ...Option) (V, error) {
	return LoadWith(path, Codec[V](Binary[V]{}), opts...)
}

// LoadStructuredText is Load using the StructuredText codec regardless of the
// active codec.
func LoadStructuredText[V Defaulter[V]](path string, opts ...Option) (V, error) {
	return LoadWith(path, Codec[V](StructuredText[V]{}), opts...)
}

// LoadJSON is Load using the JSON codec regardless of the active codec.
func LoadJSON[V Defaulter[V]](path string, opts ...Option) (V, error) {
	return LoadWith(path, Codec[V](JSON[V]{}), opts...)
}

// LoadWith is Load using the given codec.
func LoadWith[V Defaulter[V]](path string, c Codec[V], opts ...Option) (V, error) {
	o := newOptions(opts)

	value, err := read(path, c, o)

	var de *DecodeError
	if errors.As(err, &de) {
		o.logger.Warn("using default value after decode failure",
			"path", path, "format", c.Format().String(), "error", de.Err)
		return defaultOf[V](), nil
	}
	return value, err
}

// Read reads the file at path and decodes it with c, returning every failure
// including decode failures. It suits inspection and migration tooling that
// must not silently fall back to a default.
func Read[V any](path string, c Codec[V], opts ...Option) (V, error) {
	return read(path, c, newOptions(opts))
}

func read[V any](path string, c Codec[V], o *options) (V, error) {
	var zero V

	data, err := storage.ReadFile(o.fs, path)
	if err != nil {
		return zero, err
	}

	value, err := c.Decode(data)
	if err != nil {
		return zero, decodeError(c.Format(), path, err)
	}
	return value, nil
}

// Save encodes value with the active codec of V and writes it to path,
// creating or truncating the file. The file and its directory are synced
// before Save returns.
//
// The parent directory must already exist. Encoding failures return an
// *EncodeError, filesystem failures an *IOError.
func Save[V Persistable[V]](path string, value V, opts ...Option) error {
	return SaveWith(path, value, activeCodec[V](), opts...)
}

// SaveBinary is Save using the Binary codec regardless of the active codec.
func SaveBinary[V any](path string, value V, opts ...Option) error {
	return SaveWith(path, value, Codec[V](Binary[V]{}), opts...)
}

// SaveStructuredText is Save using the StructuredText codec regardless of the
// active codec.
func SaveStructuredText[V any](path string, value V, opts ...Option) error {
	return SaveWith(path, value, Codec[V](StructuredText[V]{}), opts...)
}

// SaveJSON is Save using the JSON codec regardless of the active codec.
func SaveJSON[V any](path string, value V, opts ...Option) error {
	return SaveWith(path, value, Codec[V](JSON[V]{}), opts...)
}

// SaveWith is Save using the given codec.
func SaveWith[V any](path string, value V, c Codec[V], opts ...Option) error {
	o := newOptions(opts)

	data, err := c.Encode(value)
	if err != nil {
		return encodeError(c.Format(), err)
	}

	if err := storage.WriteFile(o.fs, path, data); err != nil {
		return err
	}

	o.logger.Debug("saved value", "path", path, "format", c.Format().String(), "bytes", len(data))
	return nil
}

// Convert decodes the file at src with from and saves the value to dst with
// to. Decode failures abort the conversion instead of writing a default.
//
// src and dst may be the same path.
func Convert[V any](src string, from Codec[V], dst string, to Codec[V], opts ...Option) error {
	value, err := Read(src, from, opts...)
	if err != nil {
		return fmt.Errorf("failed to convert %q: %w", src, err)
	}
	return SaveWith(dst, value, to, opts...)
}
