package diag

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

const maxFrames = 64

// Frame is one resolved call site.
type Frame struct {
	Function string // fully qualified symbol name
	File     string
	Line     int
}

// ShortFunction returns the symbol without its import path directory,
// e.g. "easyspot.Seq[...].Nth".
func (f Frame) ShortFunction() string {
	return shortName(f.Function)
}

func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.ShortFunction(), filepath.Base(f.File), f.Line)
}

// Capture returns the calling goroutine's stack, innermost frame first.
// skip is the number of frames to omit above the caller of Capture.
func Capture(skip int) []Frame {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(skip+2, pcs) // runtime.Callers, Capture
	if n == 0 {
		return nil
	}

	frames := make([]Frame, 0, n)
	iter := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := iter.Next()
		if fr.Function != "" {
			frames = append(frames, Frame{
				Function: fr.Function,
				File:     fr.File,
				Line:     fr.Line,
			})
		}
		if !more {
			break
		}
	}
	return frames
}

// Trim takes an innermost-first stack and returns the frames from the
// entry point inwards, outermost first. The entry point is main.main; when
// it is absent the outermost frame outside the runtime and testing
// packages is used instead.
func Trim(frames []Frame) []Frame {
	entry := -1
	for i, f := range frames {
		if f.Function == "main.main" {
			entry = i
			break
		}
	}
	if entry < 0 {
		for i := len(frames) - 1; i >= 0; i-- {
			if !isHarness(frames[i].Function) {
				entry = i
				break
			}
		}
	}
	if entry < 0 {
		return nil
	}

	out := make([]Frame, 0, entry+1)
	for i := entry; i >= 0; i-- {
		out = append(out, frames[i])
	}
	return out
}

// Format writes an outermost-first stack, one frame per line, indented by
// depth.
func Format(w io.Writer, frames []Frame) {
	if len(frames) == 0 {
		fmt.Fprintln(w, " ↳ <no stack trace available>")
		return
	}
	for i, f := range frames {
		fmt.Fprintf(w, "%s%d ↳ %s\n", strings.Repeat(" ", i+1), i+1, f)
	}
	fmt.Fprintln(w)
}

func isHarness(fn string) bool {
	return strings.HasPrefix(fn, "runtime.") || strings.HasPrefix(fn, "testing.")
}

// shortName strips the import path directory from a symbol. Type
// arguments may themselves contain slashes, so only the part before the
// first '[' is searched.
func shortName(fn string) string {
	head := fn
	if i := strings.IndexByte(fn, '['); i >= 0 {
		head = fn[:i]
	}
	if i := strings.LastIndexByte(head, '/'); i >= 0 {
		return fn[i+1:]
	}
	return fn
}
