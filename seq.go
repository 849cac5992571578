package easyspot

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/easyspot/internal/conv"
)

// Seq is an owning, fixed-capacity array of T backed by one block of
// capacity * unsafe.Sizeof(T) bytes.
//
// Indexing is bounds checked in every build; an index outside
// [0, Capacity()) is a fatal ErrOutOfBounds. In debug builds element
// access is also checked for use after free, like Ref.
type Seq[T any] struct {
	block Block
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// AllocateSeq reserves a sequence of capacity elements, all zero.
// A capacity <= 0, a zero-sized T, or a byte size that overflows is fatal.
func AllocateSeq[T any](capacity int) Seq[T] {
	elem := sizeOf[T]()
	if elem == 0 {
		fault(invalidSize(capacity, fmt.Sprintf("element type %T has zero size", *new(T)), nil))
	}
	n, err := conv.IntToUintptr(capacity)
	if err != nil || n == 0 {
		fault(invalidSize(capacity, fmt.Sprintf("capacity %d must be positive", capacity), nil))
	}
	size, err := conv.BlockSize(n, elem, HeaderSize)
	if err != nil {
		fault(invalidSize(capacity, fmt.Sprintf("capacity %d of %d byte elements", capacity, elem), err))
	}
	return Seq[T]{block: allocate(size)}
}

// Capacity returns the number of elements, Block().Size() / sizeof(T).
func (s Seq[T]) Capacity() int {
	return s.block.Size() / int(sizeOf[T]())
}

// Nth returns a Ref to element idx.
func (s Seq[T]) Nth(idx int) Ref[T] {
	capacity := s.Capacity()
	if idx < 0 || idx >= capacity {
		fault(outOfBounds(idx, capacity))
	}
	return Ref[T]{ptr: (*T)(unsafe.Add(s.block.ptr, uintptr(idx)*sizeOf[T]()))} //nolint:gosec // idx < capacity
}

// At returns element idx for reading and writing.
func (s Seq[T]) At(idx int) *T {
	return s.Nth(idx).Ptr()
}

// Get returns a copy of element idx.
func (s Seq[T]) Get(idx int) T {
	return *s.At(idx)
}

// Set overwrites element idx.
func (s Seq[T]) Set(idx int, v T) {
	*s.At(idx) = v
}

// Block returns the owned block.
func (s Seq[T]) Block() Block {
	return s.block
}

// Drop releases the owned block; see Block.Drop.
func (s Seq[T]) Drop() {
	s.block.Drop()
}

func (s Seq[T]) String() string {
	return fmt.Sprintf("Seq{addr: %#x}", s.block.Addr())
}
