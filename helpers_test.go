package fetchfile_test

import (
	"path/filepath"
	"testing"

	"github.com/cockroachdb/pebble/vfs"
	"github.com/picatz/fetchfile"
)

// config stores itself as structured text.
type config struct {
	Setting1 int `msgpack:"setting1" yaml:"setting1" json:"setting1"`
	Setting2 int `msgpack:"setting2" yaml:"setting2" json:"setting2"`
}

func (config) Default() config { return config{Setting1: 0, Setting2: 5} }

func (config) Codec() fetchfile.Codec[config] { return fetchfile.StructuredText[config]{} }

// binaryConfig stores itself as binary.
type binaryConfig struct {
	Name  string `msgpack:"name" yaml:"name" json:"name"`
	Count int    `msgpack:"count" yaml:"count" json:"count"`
}

func (binaryConfig) Default() binaryConfig { return binaryConfig{Name: "default", Count: 1} }

func (binaryConfig) Codec() fetchfile.Codec[binaryConfig] { return fetchfile.Binary[binaryConfig]{} }

// binaryConfigV2 is binaryConfig after a field was added.
type binaryConfigV2 struct {
	Name    string `msgpack:"name"`
	Count   int    `msgpack:"count"`
	Enabled bool   `msgpack:"enabled"`
}

func (binaryConfigV2) Default() binaryConfigV2 { return binaryConfigV2{Name: "v2"} }

func (binaryConfigV2) Codec() fetchfile.Codec[binaryConfigV2] {
	return fetchfile.Binary[binaryConfigV2]{}
}

// jsonConfig stores itself as JSON.
type jsonConfig struct {
	Endpoints []string `json:"endpoints" yaml:"endpoints" msgpack:"endpoints"`
	Retries   int      `json:"retries" yaml:"retries" msgpack:"retries"`
}

func (jsonConfig) Default() jsonConfig {
	return jsonConfig{Endpoints: []string{"localhost:8080"}, Retries: 3}
}

func (jsonConfig) Codec() fetchfile.Codec[jsonConfig] { return fetchfile.JSON[jsonConfig]{} }

// countingFS counts the files opened for reading.
type countingFS struct {
	vfs.FS
	opens int
}

func (fs *countingFS) Open(name string, opts ...vfs.OpenOption) (vfs.File, error) {
	fs.opens++
	return fs.FS.Open(name, opts...)
}

func tempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func writeRaw(t *testing.T, fs vfs.FS, path string, data []byte) {
	t.Helper()

	f, err := fs.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		t.Fatal(err)
	}
}
