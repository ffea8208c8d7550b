package storage

import (
	"errors"
	"fmt"
)

// ErrIO is matched by every *Error via errors.Is.
var ErrIO = errors.New("fetchfile: i/o failure")

// Error records a failed filesystem operation and the path it was applied to.
type Error struct {
	// Op is the operation that failed: "stat", "open", "read", "create",
	// "write", "sync" or "close".
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *Error) Is(target error) bool { return target == ErrIO }
