package fetchfile

import (
	"bytes"
	"encoding/json"
)

// Ensure JSON implements Codec interface.
var _ Codec[any] = JSON[any]{}

// JSON is a codec for encoding and decoding values using standard Go JSON
// serialization. Output is indented by two spaces.
type JSON[V any] struct{}

// Format returns FormatJSON.
func (JSON[V]) Format() Format { return FormatJSON }

// Encode encodes a value into a JSON byte slice.
func (c JSON[V]) Encode(value V) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, &EncodeError{Format: c.Format(), Err: err}
	}
	return append(data, '\n'), nil
}

// Decode decodes a JSON byte slice into a value. Fields missing from the
// document keep the value from V's Default method, if it has one. A top-level
// null is rejected.
func (c JSON[V]) Decode(data []byte) (V, error) {
	var zero V

	switch trimmed := bytes.TrimSpace(data); {
	case len(trimmed) == 0:
		return zero, &DecodeError{Format: c.Format(), Err: errEmptyDocument}
	case bytes.Equal(trimmed, []byte("null")):
		return zero, &DecodeError{Format: c.Format(), Err: errNullDocument}
	}

	value := decodeBase[V]()
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, &DecodeError{Format: c.Format(), Err: err}
	}
	return value, nil
}
