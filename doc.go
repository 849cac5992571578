// Package easyspot provides manually managed memory blocks with an optional
// debug-build safety net for use-after-free and double-free bugs.
//
// A Block is one raw allocation. Its size lives in a hidden header word just
// before the payload, and it is released only by an explicit Drop. Ref[T] is
// a typed, non-owning view into a block; Seq[T] owns one block and presents
// it as a fixed-capacity array of T.
//
// # Quick Start
//
//	b := easyspot.Allocate(16)
//	r := easyspot.AsRef[uint64](b)
//	r.Store(789)
//	fmt.Println(r.Load(), b.Size()) // 789 16
//	b.Drop()
//
//	s := easyspot.AllocateSeq[int32](10)
//	s.Set(0, 123)
//	*s.At(1) = 456
//	fmt.Println(s.Get(0), s.Get(1), s.Capacity()) // 123 456 10
//	s.Drop()
//
// # Build Modes
//
// Building with the easyspot_debug tag turns on the live-block registry:
//
//	go test -tags easyspot_debug ./...
//
// In debug builds every Allocate records the block, every Drop removes it,
// and every Ref access scans the live blocks for one that contains the
// address. Dropping a block twice, or touching memory of a dropped block
// through a Ref or Seq, terminates the process with a call-stack dump.
//
// Release builds (the default) compile all of that out. Drop releases memory
// unconditionally and Ref access is a plain pointer dereference. Only the
// Seq bounds check and construction-time size checks remain.
//
// # Faults
//
// Every detected violation is fatal. There are no error returns: the fault
// is logged, counted, printed with a trimmed stack trace and the process
// exits with status 2. See Fault and the Err* values for the kinds.
//
// # Memory
//
// By default every block is its own anonymous mapping outside the Go heap,
// so dropped memory goes back to the OS. WithBacking(BackingGoHeap) places
// blocks on the Go heap instead. Either way the garbage collector does not
// scan block contents, so T must not contain Go pointers.
//
// # Thread Safety
//
// None. The live-block registry and the configuration are process-wide and
// unsynchronized; use blocks from one goroutine at a time.
package easyspot
