package fetchfile

import "github.com/picatz/fetchfile/internal/storage"

// FetchOrDefault returns the value stored at path, decoded with the active
// codec of V, and false. If nothing exists at path, or the file cannot be
// read or decoded, it returns the default value of V and true.
//
// FetchOrDefault never fails: the reason a default was used is only
// reported to the logger set with WithLogger. When nothing exists at path
// no read is attempted.
func FetchOrDefault[V Persistable[V]](path string, opts ...Option) (value V, usedDefault bool) {
	return FetchOrDefaultWith(path, activeCodec[V](), opts...)
}

// FetchOrDefaultWith is FetchOrDefault using the given codec.
func FetchOrDefaultWith[V Defaulter[V]](path string, c Codec[V], opts ...Option) (value V, usedDefault bool) {
	o := newOptions(opts)

	exists, err := storage.Exists(o.fs, path)
	if err != nil {
		o.logger.Warn("using default value after failed existence check", "path", path, "error", err)
		return defaultOf[V](), true
	}
	if !exists {
		o.logger.Debug("using default value for missing file", "path", path)
		return defaultOf[V](), true
	}

	value, err = read(path, c, o)
	if err != nil {
		o.logger.Warn("using default value after failed load",
			"path", path, "format", c.Format().String(), "error", err)
		return defaultOf[V](), true
	}
	return value, false
}

// FetchOrInit is FetchOrDefault that also saves the default value to path
// whenever one is used, so the next fetch finds it. An unreadable file at
// path is overwritten.
//
// The returned error only reports a failed save; the value and flag are
// valid either way.
func FetchOrInit[V Persistable[V]](path string, opts ...Option) (V, bool, error) {
	return FetchOrInitWith(path, activeCodec[V](), opts...)
}

// FetchOrInitWith is FetchOrInit using the given codec.
func FetchOrInitWith[V Defaulter[V]](path string, c Codec[V], opts ...Option) (V, bool, error) {
	value, usedDefault := FetchOrDefaultWith(path, c, opts...)
	if !usedDefault {
		return value, false, nil
	}
	if err := SaveWith(path, value, c, opts...); err != nil {
		return value, true, err
	}
	return value, true, nil
}
