// Package resource implements the memory budget for manually managed blocks.
//
// A Controller tracks the bytes currently held by live blocks and, when a
// limit is configured, refuses reservations that would exceed it:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB
//	})
//
//	// Non-blocking acquire (returns error immediately if limit exceeded)
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(4096)
//
// Acquisition never blocks. Manual allocation has no suspension points, so a
// reservation that does not fit is reported to the caller at once.
//
// A nil *Controller is valid and imposes no limit.
package resource
