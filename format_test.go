package fetchfile_test

import (
	"testing"

	"github.com/picatz/fetchfile"
	"github.com/shoenig/test/must"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]fetchfile.Format{
		"binary":  fetchfile.FormatBinary,
		"bin":     fetchfile.FormatBinary,
		"msgpack": fetchfile.FormatBinary,
		"text":    fetchfile.FormatStructuredText,
		"YAML":    fetchfile.FormatStructuredText,
		" yml ":   fetchfile.FormatStructuredText,
		"json":    fetchfile.FormatJSON,
	}

	for input, want := range cases {
		got, err := fetchfile.ParseFormat(input)
		must.NoError(t, err, must.Sprintf("input %q", input))
		must.Eq(t, want, got)
	}

	_, err := fetchfile.ParseFormat("ron")
	must.ErrorIs(t, err, fetchfile.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	for _, f := range fetchfile.Formats {
		got, ok := fetchfile.FormatFromPath("/etc/app/config" + f.Extension())
		must.True(t, ok)
		must.Eq(t, f, got)
	}

	got, ok := fetchfile.FormatFromPath("settings.YML")
	must.True(t, ok)
	must.Eq(t, fetchfile.FormatStructuredText, got)

	_, ok = fetchfile.FormatFromPath("settings.toml")
	must.False(t, ok)

	_, ok = fetchfile.FormatFromPath("settings")
	must.False(t, ok)
}
