package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToUintptr converts int to uintptr safely.
func IntToUintptr(v int) (uintptr, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uintptr (negative)", v)
	}
	return uintptr(v), nil
}

// UintptrToInt converts uintptr to int safely.
func UintptrToInt(v uintptr) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// AddSize returns a + b, or an error if the sum overflows uintptr.
func AddSize(a, b uintptr) (uintptr, error) {
	sum, carry := bits.Add(uint(a), uint(b), 0)
	if carry != 0 {
		return 0, fmt.Errorf("size overflow: %d + %d", a, b)
	}
	return uintptr(sum), nil
}

// MulSize returns count * elemSize, or an error if the product overflows
// uintptr.
func MulSize(count, elemSize uintptr) (uintptr, error) {
	hi, lo := bits.Mul(uint(count), uint(elemSize))
	if hi != 0 {
		return 0, fmt.Errorf("size overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return uintptr(lo), nil
}

// BlockSize computes count * elemSize + header and verifies that the
// result still fits an int, the type the Go runtime uses for slice lengths.
func BlockSize(count, elemSize, header uintptr) (uintptr, error) {
	payload, err := MulSize(count, elemSize)
	if err != nil {
		return 0, err
	}
	total, err := AddSize(payload, header)
	if err != nil {
		return 0, err
	}
	if _, err := UintptrToInt(total); err != nil {
		return 0, err
	}
	return payload, nil
}
