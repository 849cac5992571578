// Package mmap provides anonymous memory mappings outside the Go heap.
//
// # Overview
//
// Every off-heap block is backed by its own private, read-write anonymous
// mapping. The garbage collector never scans or moves this memory, and
// Unmap hands it straight back to the operating system, so an access after
// Unmap faults instead of reading stale data.
//
// # Usage
//
//	data, err := mmap.Map(4096)
//	if err != nil { ... }
//	// data is zeroed and page aligned
//	_ = mmap.Unmap(data)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Unmapping
//
// Unmap must receive a slice with the same base address and capacity as the
// one returned by Map. A slice rebuilt from the base pointer with
// unsafe.Slice satisfies this.
package mmap
