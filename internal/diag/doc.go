// Package diag reports unrecoverable faults and terminates the process.
//
// Panic prints the fault message followed by the current call stack,
// trimmed to the frames at or below the program's entry point, and exits
// with ExitCode. It never returns and cannot be recovered: manual memory
// bugs are reported once, at the point of detection, and nothing after
// that point runs.
//
// Stack output lists the outermost frame first:
//
//	easyspot: use after free: ref 0x7f3a2c001008 is outside every live block
//	 1 ↳ main.main (main.go:21)
//	  2 ↳ easyspot.Ref[...].Load (ref.go:47)
//
// Under go test there is no main.main on the faulting goroutine, so the
// trace starts at the outermost frame outside the runtime and testing
// packages, which is the test function itself.
package diag
