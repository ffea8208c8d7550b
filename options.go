package fetchfile

import (
	"log/slog"

	"github.com/cockroachdb/pebble/vfs"
)

// Option configures a single load, save or fetch call.
type Option func(*options)

type options struct {
	fs     vfs.FS
	logger *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		fs:     vfs.Default,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFS is an Option that sets the filesystem files are read from and
// written to.
//
// If fs is nil, then vfs.Default (the operating system) is used.
func WithFS(fs vfs.FS) Option {
	return func(o *options) {
		if fs == nil {
			fs = vfs.Default
		}
		o.fs = fs
	}
}

// WithLogger is an Option that sets the logger receiving diagnostics for
// failures that are otherwise absorbed, such as a corrupt file replaced by a
// default value. Logging never changes the result of a call.
//
// If l is nil, diagnostics are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
