package mmap

import "fmt"

// Map creates a private read-write anonymous mapping of size bytes.
// The returned memory is zeroed and page aligned.
func Map(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	data, err := osMapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("mmap: map %d bytes: %w", size, err)
	}
	return data, nil
}

// Unmap releases a mapping created by Map.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return ErrNotMapped
	}
	if err := osUnmap(data); err != nil {
		return fmt.Errorf("mmap: unmap %d bytes: %w", len(data), err)
	}
	return nil
}
