package backing

import (
	"unsafe"

	"github.com/hupe1980/easyspot/internal/conv"
	"github.com/hupe1980/easyspot/internal/mmap"
)

// OffHeap maps every region separately outside the Go heap.
type OffHeap struct{}

// Alloc implements Source.
func (OffHeap) Alloc(n uintptr) (unsafe.Pointer, error) {
	if n == 0 {
		return nil, ErrZeroLength
	}
	size, err := conv.UintptrToInt(n)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(size)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(&data[0]), nil //nolint:gosec // unsafe is required for off-heap memory
}

// Free implements Source.
func (OffHeap) Free(p unsafe.Pointer, n uintptr) error {
	size, err := conv.UintptrToInt(n)
	if err != nil {
		return err
	}
	return mmap.Unmap(unsafe.Slice((*byte)(p), size)) //nolint:gosec // unsafe is required for off-heap memory
}

// Name implements Source.
func (OffHeap) Name() string { return "offheap" }
