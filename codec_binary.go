package fetchfile

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Ensure Binary implements Codec interface.
var _ Codec[any] = Binary[any]{}

// Binary is a codec for encoding and decoding values using MessagePack.
//
// Structs are encoded as arrays of their field values, so the layout depends
// on field order and types. Files written before a struct changes shape are
// expected to fail to decode.
type Binary[V any] struct{}

// Format returns FormatBinary.
func (Binary[V]) Format() Format { return FormatBinary }

// Encode encodes a value into a MessagePack byte slice.
func (c Binary[V]) Encode(value V) ([]byte, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.UseArrayEncodedStructs(true)
	enc.SetSortMapKeys(true)

	if err := enc.Encode(value); err != nil {
		return nil, &EncodeError{Format: c.Format(), Err: err}
	}
	return buf.Bytes(), nil
}

// Decode decodes a MessagePack byte slice into a value. The input must hold
// exactly one value that is not nil. A struct must be encoded as an array
// holding one element per field.
func (c Binary[V]) Decode(data []byte) (V, error) {
	var value, zero V

	if err := checkBinaryShape[V](data); err != nil {
		return zero, &DecodeError{Format: c.Format(), Err: err}
	}

	r := bytes.NewReader(data)
	if err := msgpack.NewDecoder(r).Decode(&value); err != nil {
		return zero, &DecodeError{Format: c.Format(), Err: err}
	}
	if r.Len() > 0 {
		return zero, &DecodeError{Format: c.Format(), Err: fmt.Errorf("%d trailing bytes after value", r.Len())}
	}
	return value, nil
}

var binaryDecoderTypes = []reflect.Type{
	reflect.TypeFor[msgpack.CustomDecoder](),
	reflect.TypeFor[msgpack.Unmarshaler](),
	reflect.TypeFor[encoding.BinaryUnmarshaler](),
	reflect.TypeFor[encoding.TextUnmarshaler](),
}

// checkBinaryShape rejects a top-level nil, and a struct with fields that is
// not encoded as a non-empty array.
func checkBinaryShape[V any](data []byte) error {
	if len(data) > 0 && data[0] == msgpcode.Nil {
		return errNullDocument
	}

	t := reflect.TypeFor[V]()
	if t.Kind() != reflect.Struct || t.NumField() == 0 {
		return nil
	}
	for _, dt := range binaryDecoderTypes {
		if reflect.PointerTo(t).Implements(dt) {
			return nil
		}
	}

	n, err := msgpack.NewDecoder(bytes.NewReader(data)).DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("%s must be encoded as an array: %w", t, err)
	}
	if n == 0 {
		return fmt.Errorf("%s must be encoded as an array, got an empty one", t)
	}
	return nil
}
