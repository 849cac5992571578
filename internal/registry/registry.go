package registry

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ErrDuplicate is returned by Insert for an address that is already live.
var ErrDuplicate = errors.New("registry: address already live")

// Record describes one live block.
type Record struct {
	Block uintptr // payload address
	Size  uintptr // payload length in bytes
	// Generation is reserved for detecting address reuse. It is always 0.
	Generation uint16
}

// End returns the last address that still counts as inside the block.
// The bound is inclusive, so a one-past-the-end address is accepted.
func (r Record) End() uintptr {
	return r.Block + r.Size
}

// Contains reports whether addr lies within [Block, End()].
func (r Record) Contains(addr uintptr) bool {
	return addr >= r.Block && addr <= r.End()
}

// Registry tracks live blocks.
type Registry struct {
	records   []Record
	bytes     uintptr
	addrs     *roaring64.Bitmap // payload addresses of records
	graveyard *roaring64.Bitmap
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		addrs:     roaring64.New(),
		graveyard: roaring64.New(),
	}
}

// Insert records a newly allocated block. An address that already has a
// live record is rejected with ErrDuplicate and the registry is unchanged.
func (r *Registry) Insert(addr, size uintptr) error {
	if !r.addrs.CheckedAdd(uint64(addr)) {
		return fmt.Errorf("%w: %#x", ErrDuplicate, addr)
	}
	r.records = append(r.records, Record{Block: addr, Size: size})
	r.bytes += size
	r.graveyard.Remove(uint64(addr))
	return nil
}

// Remove forgets the block whose payload starts at addr and returns its
// record. It reports false if no live block starts there.
func (r *Registry) Remove(addr uintptr) (Record, bool) {
	if !r.addrs.Contains(uint64(addr)) {
		return Record{}, false
	}
	for i := range r.records {
		if r.records[i].Block != addr {
			continue
		}
		rec := r.records[i]
		last := len(r.records) - 1
		r.records[i] = r.records[last]
		r.records[last] = Record{}
		r.records = r.records[:last]
		r.bytes -= rec.Size
		r.addrs.Remove(uint64(addr))
		r.graveyard.Add(uint64(addr))
		return rec, true
	}
	return Record{}, false
}

// ContainsRange reports whether addr lies inside any live block.
func (r *Registry) ContainsRange(addr uintptr) bool {
	for i := range r.records {
		if r.records[i].Contains(addr) {
			return true
		}
	}
	return false
}

// Dropped reports whether addr was the payload of a block that has been
// removed and not reused since.
func (r *Registry) Dropped(addr uintptr) bool {
	return r.graveyard.Contains(uint64(addr))
}

// Len returns the number of live blocks.
func (r *Registry) Len() int {
	return len(r.records)
}

// Bytes returns the total payload size of live blocks.
func (r *Registry) Bytes() uintptr {
	return r.bytes
}

// Records returns a copy of the live records in no particular order.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}
