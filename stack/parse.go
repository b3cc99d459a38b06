package stack

import (
	"math"
	"regexp"
	"strings"

	"github.com/next-trace/scg-httperror/numconv"
)

var (
	callPattern = regexp.MustCompile(`at\s+(.*)\s+\((.*):(\d+):(\d+)\)`)
	sitePattern = regexp.MustCompile(`at\s+(.*):(\d+):(\d+)`)
)

// Parse reads raw stack text and returns at most MaxFrames frames. The first
// line is the error header and is skipped. Empty input yields an empty,
// non-nil slice.
func Parse(raw string) Frames {
	lines := strings.Split(raw, "\n")[1:]

	out := make(Frames, 0, min(len(lines), MaxFrames))
	for _, line := range lines {
		if len(out) == MaxFrames {
			break
		}

		out = append(out, parseLine(line))
	}

	return out
}

// ParseFrom parses the stack text exposed by src. A nil src yields no frames.
func ParseFrom(src Source) Frames {
	if src == nil {
		return Frames{}
	}

	return Parse(src.Stack())
}

func parseLine(line string) Frame {
	if m := callPattern.FindStringSubmatchIndex(line); m != nil {
		return Frame{
			FunctionName: orAnonymous(group(line, m, 1)),
			FileName:     derefOr(group(line, m, 2), Unknown),
			LineNumber:   toInt(group(line, m, 3)),
			ColumnNumber: toInt(group(line, m, 4)),
		}
	}

	if m := sitePattern.FindStringSubmatchIndex(line); m != nil {
		return Frame{
			FunctionName: Anonymous,
			FileName:     derefOr(group(line, m, 1), Unknown),
			LineNumber:   toInt(group(line, m, 2)),
			ColumnNumber: toInt(group(line, m, 3)),
		}
	}

	return unknownFrame()
}

// group returns the i-th capture of a submatch index slice, or nil when the
// group did not participate in the match.
func group(s string, m []int, i int) *string {
	if 2*i+1 >= len(m) || m[2*i] < 0 {
		return nil
	}

	g := s[m[2*i]:m[2*i+1]]

	return &g
}

func orAnonymous(name *string) string {
	if name == nil || *name == "" {
		return Anonymous
	}

	return *name
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}

	return *s
}

// toInt applies the shared numeric rule and narrows to int. Values that do not
// fit collapse to 0.
func toInt(s *string) int {
	n := numconv.ToNumber(s, 0)
	if n >= math.MaxInt || n < math.MinInt {
		return 0
	}

	return int(n)
}
