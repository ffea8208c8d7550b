package fetchfile

import "fmt"

// Codec encodes and decodes values of type V to and from bytes. This could
// be one of the codecs in this package, or any other serialization format
// that makes sense for your application.
//
// Implementations are stateless: Decode(Encode(v)) must yield a value equal
// to v for every value whose shape the format can represent.
type Codec[V any] interface {
	// Encode serializes the value. Failures should be reported as *EncodeError.
	Encode(V) ([]byte, error)

	// Decode parses data into a new value. Failures should be reported as
	// *DecodeError.
	Decode(data []byte) (V, error)

	// Format identifies the codec's serialization format.
	Format() Format
}

// CodecFor returns the codec for the given format.
func CodecFor[V any](f Format) (Codec[V], error) {
	switch f {
	case FormatBinary:
		return Binary[V]{}, nil
	case FormatStructuredText:
		return StructuredText[V]{}, nil
	case FormatJSON:
		return JSON[V]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// decodeBase is the value a text codec decodes onto. Types with a default
// start from it, so fields left out of a document keep their default.
func decodeBase[V any]() V {
	var value V
	if d, ok := any(value).(Defaulter[V]); ok {
		return d.Default()
	}
	return value
}
