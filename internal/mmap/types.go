package mmap

import "errors"

var (
	// ErrInvalidSize is returned when the requested mapping size is not positive.
	ErrInvalidSize = errors.New("mmap: invalid mapping size")
	// ErrNotMapped is returned when Unmap receives an empty slice.
	ErrNotMapped = errors.New("mmap: slice is not a mapping")
)
