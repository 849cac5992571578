//go:build unix || linux || darwin || freebsd || openbsd || netbsd

package mmap

import (
	"golang.org/x/sys/unix"
)

func osMapAnon(size int) ([]byte, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	return unix.Mmap(-1, 0, size, prot, flags)
}

// unix.Munmap looks the mapping up by the address of its last byte, so a
// slice rebuilt from the base pointer and length is accepted.
func osUnmap(data []byte) error {
	return unix.Munmap(data)
}
