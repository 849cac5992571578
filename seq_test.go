package easyspot

import (
	"testing"
	"unsafe"

	"github.com/hupe1980/easyspot/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
	W    float64
}

func TestSeq_WriteRead(t *testing.T) {
	s := AllocateSeq[int32](10)
	defer s.Drop()

	s.Set(0, 123)
	*s.At(1) = 456

	assert.Equal(t, int32(123), s.Get(0))
	assert.Equal(t, int32(456), s.Get(1))
	assert.Equal(t, 10, s.Capacity())

	n := s.Nth(0)
	assert.Equal(t, int32(123), n.Load())
	n.Store(111)
	assert.Equal(t, int32(111), s.Get(0))
}

func capacityOf[T any](t *testing.T, capacity int) {
	t.Helper()

	s := AllocateSeq[T](capacity)
	defer s.Drop()

	var zero T
	assert.Equal(t, capacity, s.Capacity())
	assert.Equal(t, capacity*int(unsafe.Sizeof(zero)), s.Block().Size())
}

func TestSeq_Capacity(t *testing.T) {
	rng := testutil.NewRNG(99)

	for _, capacity := range rng.Sizes(50, 512) {
		capacityOf[int8](t, capacity)
		capacityOf[int32](t, capacity)
		capacityOf[uint64](t, capacity)
		capacityOf[point](t, capacity)
		capacityOf[[3]byte](t, capacity)
	}
}

func TestSeq_NthAddress(t *testing.T) {
	s := AllocateSeq[point](4)
	defer s.Drop()

	for i := range 4 {
		assert.Equal(t, s.Block().Addr()+uintptr(i)*unsafe.Sizeof(point{}), s.Nth(i).Addr())
	}
}

func TestSeq_IndexIndependence(t *testing.T) {
	const capacity = 64
	rng := testutil.NewRNG(7)

	s := AllocateSeq[uint64](capacity)
	defer s.Drop()

	want := make([]uint64, capacity)
	for range 1000 {
		i := rng.Intn(capacity)
		v := rng.Uint64()
		s.Set(i, v)
		want[i] = v
	}

	for _, i := range rng.Perm(capacity) {
		require.Equal(t, want[i], s.Get(i), "index %d", i)
	}
}

func TestSeq_Struct(t *testing.T) {
	s := AllocateSeq[point](3)
	defer s.Drop()

	s.At(2).X = 5
	s.At(2).W = 1.5
	s.Set(0, point{X: 1, Y: 2, W: 3})

	assert.Equal(t, point{X: 5, W: 1.5}, s.Get(2))
	assert.Equal(t, point{X: 1, Y: 2, W: 3}, s.Get(0))
	assert.Equal(t, point{}, s.Get(1))
	assert.Contains(t, s.String(), "Seq{addr: 0x")
}

func TestSeq_LastIndex(t *testing.T) {
	s := AllocateSeq[int32](10)
	defer s.Drop()

	s.Set(9, -1)
	assert.Equal(t, int32(-1), s.Get(9))
}

func TestSeq_NthOutOfBounds(t *testing.T) {
	s := AllocateSeq[int32](10)

	testutil.ExpectFault(t, "easyspot: index out of bounds: index 10, capacity 10", func() {
		s.Nth(s.Capacity())
	})
	s.Drop()
}

func TestSeq_IndexOutOfBounds(t *testing.T) {
	s := AllocateSeq[int32](10)

	testutil.ExpectFault(t, "index out of bounds", func() {
		_ = s.Get(42)
	})
	s.Drop()
}

func TestSeq_NegativeIndex(t *testing.T) {
	s := AllocateSeq[int32](10)

	testutil.ExpectFault(t, "index -1, capacity 10", func() {
		s.Set(-1, 0)
	})
	s.Drop()
}

func TestAllocateSeq_ZeroCapacity(t *testing.T) {
	testutil.ExpectFault(t, "capacity 0 must be positive", func() {
		AllocateSeq[int32](0)
	})
}

func TestAllocateSeq_ZeroSizedElement(t *testing.T) {
	testutil.ExpectFault(t, "has zero size", func() {
		AllocateSeq[struct{}](4)
	})
}

func TestAllocateSeq_Overflow(t *testing.T) {
	testutil.ExpectFault(t, "invalid size", func() {
		AllocateSeq[uint64](int(^uint(0) >> 2))
	})
}
