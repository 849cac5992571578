// Package registry implements the live-block registry used by debug builds.
//
// The registry is an unordered list of records, one per block that has been
// allocated and not yet dropped. It answers two questions:
//
//   - Remove(addr): is addr the payload of a live block? If so, forget it.
//     A miss means the block was dropped already or never allocated.
//   - ContainsRange(addr): does addr fall inside [block, block+size] of
//     any live block? A miss means the address dangles.
//
// ContainsRange is a linear scan. Detection must be exact, and the list
// stays short in the programs debug builds are meant for, so there is no
// interval index. Payload addresses are also kept in a compressed bitmap:
// Insert rejects an address that is already live, and Remove misses
// without scanning.
//
// # Graveyard
//
// Payload addresses of dropped blocks are kept in a compressed bitmap so a
// failed Remove can say whether the address was live once. An address is
// taken out of the graveyard when a new block reuses it.
//
// # Thread Safety
//
// Registry is not safe for concurrent use.
package registry
