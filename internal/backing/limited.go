package backing

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/easyspot/internal/resource"
)

// Limited charges every region against a memory budget before delegating.
type Limited struct {
	src  Source
	ctrl *resource.Controller
}

// NewLimited wraps src with the budget enforced by ctrl.
func NewLimited(src Source, ctrl *resource.Controller) *Limited {
	return &Limited{src: src, ctrl: ctrl}
}

// Alloc implements Source.
func (l *Limited) Alloc(n uintptr) (unsafe.Pointer, error) {
	if uint64(n) > math.MaxInt64 {
		return nil, resource.ErrMemoryLimitExceeded
	}
	if err := l.ctrl.AcquireMemory(int64(n)); err != nil {
		return nil, fmt.Errorf("backing: reserve %d bytes (used %d of %d): %w",
			n, l.ctrl.MemoryUsage(), l.ctrl.MemoryLimit(), err)
	}
	p, err := l.src.Alloc(n)
	if err != nil {
		l.ctrl.ReleaseMemory(int64(n))
		return nil, err
	}
	return p, nil
}

// Free implements Source.
func (l *Limited) Free(p unsafe.Pointer, n uintptr) error {
	if err := l.src.Free(p, n); err != nil {
		return err
	}
	l.ctrl.ReleaseMemory(int64(n))
	return nil
}

// Name implements Source.
func (l *Limited) Name() string { return l.src.Name() + "+limit" }

// Controller exposes the budget for reporting.
func (l *Limited) Controller() *resource.Controller { return l.ctrl }
