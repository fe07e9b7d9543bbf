package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrInvalidArguments    = errors.New("invalid arguments")
	ErrPathNotFound        = errors.New("path not found")
	ErrFilesystemOperation = errors.New("filesystem operation failed")
)

// ValidationError represents an invalid or missing argument
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArguments
}

// PathNotFoundError reports a root that does not exist or is not a directory
type PathNotFoundError struct {
	Role   string
	Path   string
	Reason string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s %q %s", ErrPathNotFound, e.Role, e.Path, e.Reason)
}

func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// FilesystemError wraps a failed walk, stat, mkdir or copy
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

func (e *FilesystemError) Is(target error) bool {
	return target == ErrFilesystemOperation
}
