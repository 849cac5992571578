// Package conv provides checked integer conversions and size arithmetic.
//
// Block and sequence sizes arrive as int from callers and are stored as
// uintptr in block headers. Every crossing between the two, and every
// count * elementSize product, goes through this package so that an
// overflow surfaces as an error instead of a short allocation.
//
// Use cases:
//   - Converting caller-supplied sizes and capacities to header words
//   - Computing capacity * sizeof(T) and header + payload totals
//
// For conversions that are provably safe by construction (e.g. an index
// already compared against a capacity), use direct casts instead.
package conv
