package easyspot

import (
	"fmt"
	"unsafe"
)

// Ref is a typed, non-owning view of memory inside a block.
//
// A Ref does not keep its block alive and stays usable after the block is
// dropped. In debug builds every access first checks that the address lies
// inside a live block and faults with ErrUseAfterFree otherwise. Release
// builds access the memory directly.
type Ref[T any] struct {
	ptr *T
}

// RefAt wraps a raw address as a Ref. The address is not validated until
// the Ref is accessed.
func RefAt[T any](p unsafe.Pointer) Ref[T] {
	return Ref[T]{ptr: (*T)(p)}
}

// Ptr returns the referenced value for reading and writing.
func (r Ref[T]) Ptr() *T {
	if Debug {
		checkUse(r.Addr())
	}
	return r.ptr
}

// Load returns a copy of the referenced value.
func (r Ref[T]) Load() T {
	return *r.Ptr()
}

// Store overwrites the referenced value.
func (r Ref[T]) Store(v T) {
	*r.Ptr() = v
}

// Addr returns the referenced address.
func (r Ref[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(r.ptr)) //nolint:gosec // address only
}

// IsNil reports whether r refers to nothing.
func (r Ref[T]) IsNil() bool {
	return r.ptr == nil
}

func (r Ref[T]) String() string {
	return fmt.Sprintf("Ref{addr: %#x}", r.Addr())
}
