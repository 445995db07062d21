package files

import "errors"

var (
	ErrNoRoot      = errors.New("root directory is not configured")
	ErrOutsideRoot = errors.New("path escapes the root directory")
	ErrBadFileName = errors.New("file name must be non-empty and contain no path separators")
)

// Error records a failed file operation and the path it was applied to.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
