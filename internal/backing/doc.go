// Package backing provides the raw memory sources behind blocks.
//
// A Source hands out one contiguous, zeroed, word-aligned region per call
// and takes it back on Free. The caller remembers the length (in the block
// header) and passes it back.
//
// # Implementations
//
// OffHeap: one anonymous mapping per region (see internal/mmap)
//
//   - Invisible to the garbage collector
//   - Free returns pages to the OS; later access faults
//
// GoHeap: a pointer-free Go allocation per region
//
//   - Regions are pinned until Free; an undropped block is a leak
//   - Free unpins; the region lives until unreachable
//   - Stale access reads old data instead of faulting
//
// Limited: wraps another Source with a resource.Controller budget.
package backing
