// Package storage provides the file operations used to persist encoded
// values. Every function opens and closes its own handles on the given
// filesystem; nothing is cached or buffered between calls.
//
// The filesystem is a pebble [vfs.FS], which is the operating system by
// default ([vfs.Default]) and can be swapped for an in-memory one in tests.
package storage

import (
	"errors"
	"io"
	"os"

	"github.com/cockroachdb/pebble/vfs"
)

// Exists reports whether something exists at path. A path that does not
// exist is not an error.
func Exists(fs vfs.FS, path string) (bool, error) {
	_, err := fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, &Error{Op: "stat", Path: path, Err: err}
	}
}

// ReadFile reads the whole file at path.
func ReadFile(fs vfs.FS, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// WriteFile creates or truncates the file at path, writes data to it and
// syncs both the file and its parent directory before returning. Parent
// directories are never created.
//
// The file is written in place. A failure part way through can leave it
// partially written.
func WriteFile(fs vfs.FS, path string, data []byte) error {
	f, err := fs.Create(path)
	if err != nil {
		return &Error{Op: "create", Path: path, Err: err}
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return &Error{Op: "write", Path: path, Err: err}
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return &Error{Op: "sync", Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &Error{Op: "close", Path: path, Err: err}
	}

	return syncDir(fs, fs.PathDir(path))
}

// syncDir makes a newly created directory entry durable.
func syncDir(fs vfs.FS, dir string) error {
	d, err := fs.OpenDir(dir)
	if err != nil {
		return &Error{Op: "open", Path: dir, Err: err}
	}
	defer d.Close()

	if err := d.Sync(); err != nil {
		return &Error{Op: "sync", Path: dir, Err: err}
	}
	return nil
}
