package fetchfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names one of the supported serialization formats.
type Format string

const (
	// FormatBinary is a compact, positional MessagePack encoding. It is the
	// smallest and fastest format, and the least tolerant of schema changes.
	FormatBinary Format = "binary"

	// FormatStructuredText is a pretty-printed YAML encoding meant to be edited
	// by hand and kept under version control.
	FormatStructuredText Format = "text"

	// FormatJSON is a pretty-printed JSON encoding for use with external tools.
	FormatJSON Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatBinary, FormatStructuredText, FormatJSON}

// String returns the canonical name of the format.
func (f Format) String() string {
	return string(f)
}

// Extension returns the conventional file extension for the format,
// including the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatBinary:
		return ".bin"
	case FormatStructuredText:
		return ".yaml"
	case FormatJSON:
		return ".json"
	default:
		return ""
	}
}

// ParseFormat parses a format name. Besides the canonical names it accepts
// the aliases "bin", "msgpack", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin", "msgpack":
		return FormatBinary, nil
	case "text", "yaml", "yml":
		return FormatStructuredText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format of a file from its extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin", ".msgpack":
		return FormatBinary, true
	case ".yaml", ".yml":
		return FormatStructuredText, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}
