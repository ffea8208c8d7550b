package storage_test

import (
	"errors"
	"os"
	"testing"

	"github.com/cockroachdb/pebble/vfs"
	"github.com/picatz/fetchfile/internal/storage"
	"github.com/shoenig/test/must"
)

var errSyncFailed = errors.New("sync failed")

type failingSyncFS struct {
	vfs.FS
}

func (fs failingSyncFS) Create(name string) (vfs.File, error) {
	f, err := fs.FS.Create(name)
	if err != nil {
		return nil, err
	}
	return failingSyncFile{f}, nil
}

type failingSyncFile struct {
	vfs.File
}

func (failingSyncFile) Sync() error { return errSyncFailed }

func TestExists(t *testing.T) {
	fs := vfs.NewMem()

	ok, err := storage.Exists(fs, "/missing")
	must.NoError(t, err)
	must.False(t, ok)

	must.NoError(t, storage.WriteFile(fs, "/present", []byte("hello")))

	ok, err = storage.Exists(fs, "/present")
	must.NoError(t, err)
	must.True(t, ok)
}

func TestWriteFile_readFile(t *testing.T) {
	fs := vfs.NewMem()

	must.NoError(t, storage.WriteFile(fs, "/file", []byte("a much longer first version")))
	must.NoError(t, storage.WriteFile(fs, "/file", []byte("short")))

	data, err := storage.ReadFile(fs, "/file")
	must.NoError(t, err)
	must.Eq(t, "short", string(data))
}

func TestWriteFile_dir(t *testing.T) {
	dir := t.TempDir()
	path := vfs.Default.PathJoin(dir, "file")

	must.NoError(t, storage.WriteFile(vfs.Default, path, []byte("on disk")))

	data, err := os.ReadFile(path)
	must.NoError(t, err)
	must.Eq(t, "on disk", string(data))
}

func TestWriteFile_missingParent(t *testing.T) {
	fs := vfs.NewMem()

	err := storage.WriteFile(fs, "/no/such/dir/file", []byte("hello"))
	must.ErrorIs(t, err, storage.ErrIO)

	var ioErr *storage.Error
	must.ErrorAs(t, err, &ioErr)
	must.Eq(t, "create", ioErr.Op)
	must.Eq(t, "/no/such/dir/file", ioErr.Path)
}

func TestWriteFile_syncFailure(t *testing.T) {
	fs := failingSyncFS{vfs.NewMem()}

	err := storage.WriteFile(fs, "/file", []byte("hello"))
	must.ErrorIs(t, err, errSyncFailed)

	var ioErr *storage.Error
	must.ErrorAs(t, err, &ioErr)
	must.Eq(t, "sync", ioErr.Op)
}

func TestWriteFile_durable(t *testing.T) {
	fs := vfs.NewStrictMem()

	must.NoError(t, storage.WriteFile(fs, "/file", []byte("synced")))

	fs.SetIgnoreSyncs(true)
	fs.ResetToSyncedState()
	fs.SetIgnoreSyncs(false)

	data, err := storage.ReadFile(fs, "/file")
	must.NoError(t, err)
	must.Eq(t, "synced", string(data))
}

func TestReadFile_missing(t *testing.T) {
	_, err := storage.ReadFile(vfs.NewMem(), "/missing")
	must.ErrorIs(t, err, storage.ErrIO)
	must.ErrorIs(t, err, os.ErrNotExist)

	var ioErr *storage.Error
	must.ErrorAs(t, err, &ioErr)
	must.Eq(t, "open", ioErr.Op)
}

func TestReadFile_directory(t *testing.T) {
	fs := vfs.NewMem()
	must.NoError(t, fs.MkdirAll("/dir", 0o755))

	_, err := storage.ReadFile(fs, "/dir")

	var ioErr *storage.Error
	must.ErrorAs(t, err, &ioErr)
	must.Eq(t, "read", ioErr.Op)
}
