package fetchfile

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Ensure StructuredText implements Codec interface.
var _ Codec[any] = StructuredText[any]{}

var errExtraDocument = errors.New("unexpected content after the first document")

// StructuredText is a codec for encoding and decoding values as YAML.
//
// Output is indented by two spaces and struct fields keep their declared
// order, so files diff cleanly and can be edited by hand. Comments are
// ignored when decoding.
type StructuredText[V any] struct{}

// Format returns FormatStructuredText.
func (StructuredText[V]) Format() Format { return FormatStructuredText }

// Encode encodes a value into a YAML document.
func (c StructuredText[V]) Encode(value V) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(value); err != nil {
		return nil, &EncodeError{Format: c.Format(), Err: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &EncodeError{Format: c.Format(), Err: err}
	}
	return buf.Bytes(), nil
}

// Decode decodes a single YAML document into a value. Fields missing from
// the document keep the value from V's Default method, if it has one.
// Empty and null documents are rejected, as is anything after the first
// document.
func (c StructuredText[V]) Decode(data []byte) (V, error) {
	var zero V

	value, err := c.decode(data)
	if err != nil {
		return zero, &DecodeError{Format: c.Format(), Err: err}
	}
	return value, nil
}

func (StructuredText[V]) decode(data []byte) (V, error) {
	var zero V

	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, errEmptyDocument
		}
		return zero, err
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return zero, errEmptyDocument
		}
		root = doc.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return zero, errNullDocument
	}

	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errExtraDocument
		}
		return zero, err
	}

	value := decodeBase[V]()
	if err := doc.Decode(&value); err != nil {
		return zero, err
	}
	return value, nil
}
