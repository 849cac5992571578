package backing

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/hupe1980/easyspot/internal/conv"
)

const wordSize = unsafe.Sizeof(uint64(0))

// ErrUnknownRegion is returned by GoHeap.Free for a pointer it did not
// hand out or has already taken back.
var ErrUnknownRegion = errors.New("backing: region not allocated by this source")

// GoHeap allocates regions on the Go heap as pointer-free word arrays.
// The word element type guarantees 8-byte alignment and tells the
// collector there is nothing inside to scan.
//
// Every region stays pinned in the source until Free, so a block whose
// handle is lost is a leak, not garbage, and its address is never handed
// out again while it is live.
type GoHeap struct {
	mu      sync.Mutex
	regions map[unsafe.Pointer][]uint64
}

// NewGoHeap creates an empty Go-heap source.
func NewGoHeap() *GoHeap {
	return &GoHeap{regions: make(map[unsafe.Pointer][]uint64)}
}

// Alloc implements Source.
func (g *GoHeap) Alloc(n uintptr) (unsafe.Pointer, error) {
	if n == 0 {
		return nil, ErrZeroLength
	}
	words, err := conv.UintptrToInt((n + wordSize - 1) / wordSize)
	if err != nil {
		return nil, err
	}
	buf := make([]uint64, words)
	p := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for raw blocks

	g.mu.Lock()
	g.regions[p] = buf
	g.mu.Unlock()
	return p, nil
}

// Free implements Source. The region is unpinned; it stays reachable
// through any pointer still held into it and is collected once none
// remain.
func (g *GoHeap) Free(p unsafe.Pointer, _ uintptr) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.regions[p]; !ok {
		return ErrUnknownRegion
	}
	delete(g.regions, p)
	return nil
}

// Regions returns the number of regions allocated and not freed.
func (g *GoHeap) Regions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.regions)
}

// Name implements Source.
func (g *GoHeap) Name() string { return "goheap" }
