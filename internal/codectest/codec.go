// Package codectest provides shared checks for fetchfile codecs.
package codectest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/picatz/fetchfile"
	"github.com/shoenig/test/must"
)

// Settings is a flat record with the shape of a small configuration file.
type Settings struct {
	Setting1 int `msgpack:"setting1" yaml:"setting1" json:"setting1"`
	Setting2 int `msgpack:"setting2" yaml:"setting2" json:"setting2"`
}

// Default returns the default Settings.
func (Settings) Default() Settings {
	return Settings{Setting1: 0, Setting2: 5}
}

// Profile is a record with nested and repeated fields.
type Profile struct {
	Name    string            `msgpack:"name" yaml:"name" json:"name"`
	Enabled bool              `msgpack:"enabled" yaml:"enabled" json:"enabled"`
	Ratio   float64           `msgpack:"ratio" yaml:"ratio" json:"ratio"`
	Tags    []string          `msgpack:"tags" yaml:"tags" json:"tags"`
	Limits  map[string]int    `msgpack:"limits" yaml:"limits" json:"limits"`
	Window  Window            `msgpack:"window" yaml:"window" json:"window"`
	Labels  map[string]string `msgpack:"labels" yaml:"labels" json:"labels"`
}

// Window is nested inside Profile.
type Window struct {
	Width  int `msgpack:"width" yaml:"width" json:"width"`
	Height int `msgpack:"height" yaml:"height" json:"height"`
}

// Profiles returns sample profiles covering every field kind.
func Profiles() []Profile {
	return []Profile{
		{
			Name:    "primary",
			Enabled: true,
			Ratio:   0.75,
			Tags:    []string{"a", "b", "c"},
			Limits:  map[string]int{"cpu": 2, "memory": 512},
			Window:  Window{Width: 1280, Height: 720},
			Labels:  map[string]string{"env": "dev"},
		},
		{
			Name:    "with # hash and: colon",
			Enabled: false,
			Ratio:   -12.5,
			Tags:    []string{"", "quoted \"value\"", "multi\nline"},
			Limits:  map[string]int{"zero": 0},
			Window:  Window{Width: -1, Height: 0},
			Labels:  map[string]string{"unicode": "héllo ✓"},
		},
	}
}

// CodecSuite checks that c round-trips every value, encodes deterministically
// and rejects input that is not a single document of V's shape. V must be a
// struct type with at least one field.
func CodecSuite[V any](t *testing.T, c fetchfile.Codec[V], values ...V) {
	t.Helper()

	for _, value := range values {
		data, err := c.Encode(value)
		must.NoError(t, err)
		must.SliceNotEmpty(t, data)

		again, err := c.Encode(value)
		must.NoError(t, err)
		must.True(t, bytes.Equal(data, again), must.Sprint("encoding is not deterministic"))

		decoded, err := c.Decode(data)
		must.NoError(t, err)
		must.Eq(t, value, decoded)

		_, err = c.Decode(append(append([]byte(nil), data...), data...))
		must.ErrorIs(t, err, fetchfile.ErrDecode, must.Sprint("value followed by another value"))
	}

	_, err := c.Decode(nil)
	must.Error(t, err)
	must.True(t, errors.Is(err, fetchfile.ErrDecode))

	_, err = c.Decode([]byte("not valid"))
	must.ErrorIs(t, err, fetchfile.ErrDecode)

	var decodeErr *fetchfile.DecodeError
	must.ErrorAs(t, err, &decodeErr)
	must.Eq(t, c.Format(), decodeErr.Format)

	for name, doc := range map[string]any{
		"null":   nil,
		"number": 42,
		"string": "text",
		"list":   []string{},
	} {
		data := encodeAs(t, c.Format(), doc)

		_, err := c.Decode(data)
		must.ErrorIs(t, err, fetchfile.ErrDecode, must.Sprintf("%s document %q", name, data))
	}
}

// encodeAs encodes doc in format f with no expectations about its shape.
func encodeAs(t *testing.T, f fetchfile.Format, doc any) []byte {
	t.Helper()

	c, err := fetchfile.CodecFor[any](f)
	must.NoError(t, err)

	data, err := c.Encode(doc)
	must.NoError(t, err)
	return data
}
