package diag

import (
	"fmt"
	"io"
	"os"
)

// ExitCode is the process status after a fault, the same status an
// unrecovered Go panic produces.
const ExitCode = 2

var (
	output io.Writer = os.Stderr
	exit             = os.Exit
)

// SetOutput redirects fault reports. A nil writer restores os.Stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// Output returns the writer fault reports go to.
func Output() io.Writer {
	return output
}

// Panic reports msg with a trimmed stack trace of its caller and
// terminates the process.
func Panic(msg string) {
	frames := Trim(Capture(1))

	fmt.Fprintf(output, "\n%s\n", msg)
	Format(output, frames)
	if f, ok := output.(interface{ Sync() error }); ok {
		_ = f.Sync()
	}

	exit(ExitCode)
	panic("diag: exit returned")
}
