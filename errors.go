package easyspot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUseAfterFree is reported when a Ref is accessed at an address that
	// lies outside every live block. Debug builds only.
	ErrUseAfterFree = errors.New("use after free")
	// ErrDoubleDrop is reported when Drop is called on a block that is not
	// live. Debug builds only.
	ErrDoubleDrop = errors.New("double drop")
	// ErrOutOfBounds is reported when a Seq index is not below its capacity.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidSize is reported for non-positive sizes or capacities,
	// zero-sized element types and sizes that overflow.
	ErrInvalidSize = errors.New("invalid size")
	// ErrAllocationFailed is reported when the backing source cannot
	// provide memory.
	ErrAllocationFailed = errors.New("allocation failed")
	// ErrReleaseFailed is reported when the backing source cannot take
	// memory back.
	ErrReleaseFailed = errors.New("release failed")
	// ErrMemoryLimitExceeded is reported when an allocation would exceed
	// the configured memory limit.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")
)

// Fault describes a detected memory-safety violation. Faults are never
// returned to callers; they are handed to the logger and metrics collector
// and printed before the process terminates.
//
// The fault kind and the original underlying error (if any) can be matched
// with errors.Is.
type Fault struct {
	Kind     error   // one of the Err* values
	Addr     uintptr // block payload or ref address, if any
	Size     int     // requested size, if any
	Index    int     // Seq index, for ErrOutOfBounds
	Capacity int     // Seq capacity, for ErrOutOfBounds
	Detail   string
	cause    error
}

func (f *Fault) Error() string {
	var sb strings.Builder
	sb.WriteString("easyspot: ")
	sb.WriteString(f.Kind.Error())
	if f.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(f.Detail)
	}
	if f.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(f.cause.Error())
	}
	return sb.String()
}

func (f *Fault) Unwrap() []error {
	if f.cause == nil {
		return []error{f.Kind}
	}
	return []error{f.Kind, f.cause}
}

func useAfterFree(addr uintptr) *Fault {
	return &Fault{
		Kind:   ErrUseAfterFree,
		Addr:   addr,
		Detail: fmt.Sprintf("ref %#x is outside every live block", addr),
	}
}

func doubleDrop(addr uintptr, dropped bool) *Fault {
	detail := fmt.Sprintf("block %#x was never allocated or its handle is corrupt", addr)
	if dropped {
		detail = fmt.Sprintf("block %#x was already dropped", addr)
	}
	return &Fault{Kind: ErrDoubleDrop, Addr: addr, Detail: detail}
}

func duplicateBlock(addr uintptr, size int, cause error) *Fault {
	return &Fault{
		Kind:   ErrAllocationFailed,
		Addr:   addr,
		Size:   size,
		Detail: fmt.Sprintf("source returned block %#x while it is still live", addr),
		cause:  cause,
	}
}

func outOfBounds(idx, capacity int) *Fault {
	return &Fault{
		Kind:     ErrOutOfBounds,
		Index:    idx,
		Capacity: capacity,
		Detail:   fmt.Sprintf("index %d, capacity %d", idx, capacity),
	}
}

func invalidSize(size int, detail string, cause error) *Fault {
	return &Fault{Kind: ErrInvalidSize, Size: size, Detail: detail, cause: cause}
}
