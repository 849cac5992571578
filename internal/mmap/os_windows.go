//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func osMapAnon(size int) ([]byte, error) {
	// MEM_COMMIT is demand paged, so small blocks do not touch the paging
	// file until written.
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil //nolint:gosec // unsafe is required for off-heap memory
}

func osUnmap(data []byte) error {
	// MEM_RELEASE frees the whole region; the size argument must be 0.
	return windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE) //nolint:gosec // unsafe is required for off-heap memory
}
