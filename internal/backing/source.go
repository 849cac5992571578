package backing

import (
	"errors"
	"unsafe"
)

// ErrZeroLength is returned when a region of zero bytes is requested.
var ErrZeroLength = errors.New("backing: zero-length region")

// Source allocates and releases raw memory regions.
type Source interface {
	// Alloc returns n zeroed bytes aligned to at least the machine word.
	Alloc(n uintptr) (unsafe.Pointer, error)
	// Free releases a region returned by Alloc. n must equal the length
	// passed to Alloc.
	Free(p unsafe.Pointer, n uintptr) error
	// Name identifies the source in logs and diagnostics.
	Name() string
}
