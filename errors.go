package filesense

import (
	"errors"
	"fmt"
)

// Common classification errors
var (
	ErrNotExist      = errors.New("file does not exist")
	ErrPermission    = errors.New("permission denied")
	ErrNotRegular    = errors.New("not a regular file")
	ErrClosed        = errors.New("session already closed")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInternal      = errors.New("internal classification error")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsPermission reports whether an error indicates that permission is denied
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}
