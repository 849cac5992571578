package easyspot

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/easyspot/internal/backing"
	"github.com/hupe1980/easyspot/internal/conv"
	"github.com/hupe1980/easyspot/internal/resource"
)

// HeaderSize is the width of the size header stored in front of every
// payload: one native machine word.
const HeaderSize = unsafe.Sizeof(uintptr(0))

// Block is an untyped owning handle to one manual allocation.
//
// The allocation is HeaderSize + Size() bytes. The first word holds the
// requested size and the handle points just past it. The handle keeps its
// own copy of the size so Size never touches the allocation. A Block is
// released only by Drop, exactly once; copies of the handle share the
// allocation.
type Block struct {
	ptr  unsafe.Pointer // payload, HeaderSize bytes past the allocation base
	size uintptr
	src  backing.Source // source that produced the allocation
}

// Allocate reserves a block with a payload of size bytes. The payload is
// zeroed. A size <= 0 is fatal.
func Allocate(size int) Block {
	n, err := conv.IntToUintptr(size)
	if err != nil || n == 0 {
		fault(invalidSize(size, fmt.Sprintf("block size %d must be positive", size), nil))
	}
	if _, err := conv.BlockSize(n, 1, HeaderSize); err != nil {
		fault(invalidSize(size, "block size too large", err))
	}
	return allocate(n)
}

// allocate reserves HeaderSize + size bytes and writes the header. size
// has been validated by the caller.
func allocate(size uintptr) Block {
	src := state.source
	base, err := src.Alloc(HeaderSize + size)
	if err != nil {
		fault(allocFault(int(size), err))
	}

	*(*uintptr)(base) = size
	b := Block{ptr: unsafe.Add(base, HeaderSize), size: size, src: src} //nolint:gosec // header precedes payload

	if Debug {
		if err := live.Insert(b.Addr(), size); err != nil {
			fault(duplicateBlock(b.Addr(), int(size), err))
		}
		state.logger.LogAllocate(b.Addr(), int(size), src.Name())
	}
	state.metrics.RecordAllocate(int(size))
	return b
}

func allocFault(size int, err error) *Fault {
	kind := ErrAllocationFailed
	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		kind = ErrMemoryLimitExceeded
	}
	return &Fault{Kind: kind, Size: size, Detail: fmt.Sprintf("%d byte block", size), cause: err}
}

// Size returns the payload size in bytes. It is O(1), performs no checks
// and stays valid after Drop.
func (b Block) Size() int {
	return int(b.size)
}

// Addr returns the payload address.
func (b Block) Addr() uintptr {
	return uintptr(b.ptr)
}

// IsZero reports whether b is the zero Block, which owns nothing.
func (b Block) IsZero() bool {
	return b.ptr == nil
}

// Bytes returns the payload as a byte slice. The slice aliases the block
// and must not be used after Drop. Accesses through it are never checked.
func (b Block) Bytes() []byte {
	return unsafe.Slice((*byte)(b.ptr), b.Size()) //nolint:gosec // payload is Size() bytes
}

// AsRef reinterprets the payload of b as a T. It performs no size check:
// the caller must ensure unsafe.Sizeof(T) <= b.Size().
func AsRef[T any](b Block) Ref[T] {
	return Ref[T]{ptr: (*T)(b.ptr)}
}

// Drop releases the block, header included.
//
// In debug builds a block that is not live (dropped before, or never
// allocated) is a fatal ErrDoubleDrop. Release builds hand the memory back
// to the source without a registry check: a second drop of a Go-heap block
// is a fatal ErrReleaseFailed, a second drop of an off-heap block is
// undefined behavior.
func (b Block) Drop() {
	addr := b.Addr()
	if Debug {
		if _, ok := live.Remove(addr); !ok {
			fault(doubleDrop(addr, live.Dropped(addr)))
		}
	}

	size := b.size
	base := unsafe.Add(b.ptr, -int(HeaderSize)) //nolint:gosec // header precedes payload
	if err := b.src.Free(base, HeaderSize+size); err != nil {
		fault(&Fault{Kind: ErrReleaseFailed, Addr: addr, Size: int(size), cause: err})
	}

	if Debug {
		state.logger.LogDrop(addr, int(size))
	}
	state.metrics.RecordDrop(int(size))
}

func (b Block) String() string {
	return fmt.Sprintf("Block{addr: %#x}", b.Addr())
}
