package stack

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// callersDepth bounds how many program counters Callers collects.
const callersDepth = 32

// Format renders frames as "    at fn (file:line:col)" lines joined by
// newlines. A non-empty header becomes the first line, which Parse skips.
func Format(header string, frames []Frame) string {
	var b strings.Builder

	if header != "" {
		b.WriteString(header)
	}

	for i, f := range frames {
		if i > 0 || header != "" {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "    at %s (%s:%d:%d)", f.FunctionName, f.FileName, f.LineNumber, f.ColumnNumber)
	}

	return b.String()
}

// Callers captures the calling goroutine's stack, skipping skip frames above
// the caller of Callers. Frames whose function name fails keep are dropped;
// a nil keep retains everything. Go does not report columns, so ColumnNumber
// is always 0.
func Callers(skip int, keep func(function string) bool) Frames {
	pc := make([]uintptr, callersDepth)

	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return Frames{}
	}

	it := runtime.CallersFrames(pc[:n])

	out := make(Frames, 0, n)
	for {
		fr, more := it.Next()
		if keep == nil || keep(fr.Function) {
			out = append(out, Frame{
				FunctionName: orAnonymous(&fr.Function),
				FileName:     fr.File,
				LineNumber:   fr.Line,
			})
		}

		if !more {
			break
		}
	}

	return out
}

// FromPkgErrors converts a github.com/pkg/errors stack trace into frames.
func FromPkgErrors(st errors.StackTrace) Frames {
	out := make(Frames, 0, len(st))

	for _, f := range st {
		// errors.Frame holds a return address; step back into the call instruction.
		pc := uintptr(f) - 1

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			out = append(out, unknownFrame())
			continue
		}

		file, line := fn.FileLine(pc)
		out = append(out, Frame{
			FunctionName: orAnonymous(ptrTo(fn.Name())),
			FileName:     file,
			LineNumber:   line,
		})
	}

	return out
}

func ptrTo(s string) *string { return &s }
