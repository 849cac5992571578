package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_InsertRemove(t *testing.T) {
	r := New()

	r.Insert(0x1000, 16)
	r.Insert(0x2000, 32)
	r.Insert(0x3000, 64)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, uintptr(112), r.Bytes())

	rec, ok := r.Remove(0x2000)
	require.True(t, ok)
	assert.Equal(t, Record{Block: 0x2000, Size: 32}, rec)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, uintptr(80), r.Bytes())

	_, ok = r.Remove(0x2000)
	assert.False(t, ok, "second remove must miss")
	assert.Equal(t, 2, r.Len())

	_, ok = r.Remove(0x9999)
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())

	blocks := []uintptr{}
	for _, rec := range r.Records() {
		blocks = append(blocks, rec.Block)
		assert.Zero(t, rec.Generation)
	}
	assert.ElementsMatch(t, []uintptr{0x1000, 0x3000}, blocks)
}

func TestRegistry_RemoveOrderIndependent(t *testing.T) {
	r := New()
	for i := uintptr(1); i <= 10; i++ {
		r.Insert(i*0x100, 8)
	}

	for _, addr := range []uintptr{0x500, 0x100, 0xA00, 0x300} {
		_, ok := r.Remove(addr)
		require.True(t, ok)
	}
	assert.Equal(t, 6, r.Len())

	for _, addr := range []uintptr{0x200, 0x400, 0x600, 0x700, 0x800, 0x900} {
		assert.True(t, r.ContainsRange(addr), "addr %#x", addr)
	}
}

func TestRegistry_ContainsRange(t *testing.T) {
	r := New()
	r.Insert(0x1000, 16)

	tests := []struct {
		name string
		addr uintptr
		want bool
	}{
		{"start", 0x1000, true},
		{"middle", 0x1008, true},
		{"last byte", 0x100F, true},
		{"one past end", 0x1010, true},
		{"before", 0x0FFF, false},
		{"after", 0x1011, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ContainsRange(tt.addr))
		})
	}

	r.Remove(0x1000)
	assert.False(t, r.ContainsRange(0x1008))
}

func TestRegistry_Graveyard(t *testing.T) {
	r := New()
	assert.False(t, r.Dropped(0x1000))

	r.Insert(0x1000, 8)
	assert.False(t, r.Dropped(0x1000))

	r.Remove(0x1000)
	assert.True(t, r.Dropped(0x1000))
	assert.False(t, r.Dropped(0x2000), "never allocated")

	r.Insert(0x1000, 8)
	assert.False(t, r.Dropped(0x1000), "reused address is live again")
}

func TestRegistry_Records_IsCopy(t *testing.T) {
	r := New()
	r.Insert(0x1000, 8)

	recs := r.Records()
	recs[0].Block = 0xdead

	assert.True(t, r.ContainsRange(0x1000))
}

func TestRegistry_InsertDuplicate(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(0x1000, 16))

	err := r.Insert(0x1000, 32)
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "0x1000")
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, uintptr(16), r.Bytes())

	_, ok := r.Remove(0x1000)
	require.True(t, ok)
	_, ok = r.Remove(0x1000)
	assert.False(t, ok, "duplicate left no second record behind")

	require.NoError(t, r.Insert(0x1000, 32), "address is free again after remove")
}
