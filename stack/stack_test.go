package stack_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/next-trace/scg-httperror/stack"
)

type rawStack string

func (r rawStack) Stack() string { return string(r) }

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	frames := stack.Parse("")
	require.NotNil(t, frames)
	assert.Empty(t, frames)

	assert.Empty(t, stack.ParseFrom(nil))
	assert.Empty(t, stack.ParseFrom(rawStack("")))
}

func TestParse_CallAndSiteShapes(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"Error: boom",
		"    at handleRequest (/srv/app/handler.js:42:13)",
		"    at /srv/app/server.js:7:3",
	}, "\n")

	frames := stack.Parse(raw)
	require.Len(t, frames, 2)

	assert.Equal(t, stack.Frame{
		FunctionName: "handleRequest",
		FileName:     "/srv/app/handler.js",
		LineNumber:   42,
		ColumnNumber: 13,
	}, frames[0])

	assert.Equal(t, stack.Frame{
		FunctionName: stack.Anonymous,
		FileName:     "/srv/app/server.js",
		LineNumber:   7,
		ColumnNumber: 3,
	}, frames[1])
}

func TestParse_EmptyFunctionNameIsAnonymous(t *testing.T) {
	t.Parallel()

	frames := stack.Parse("Error\n    at  (/srv/app.js:1:2)")
	require.Len(t, frames, 1)
	assert.Equal(t, stack.Anonymous, frames[0].FunctionName)
	assert.Equal(t, "/srv/app.js", frames[0].FileName)
}

func TestParse_UnparseableLineYieldsSentinel(t *testing.T) {
	t.Parallel()

	frames := stack.Parse("Error: x\nnot a frame\n")
	require.Len(t, frames, 2, "every line after the header yields a frame")

	for _, f := range frames {
		assert.Equal(t, stack.Frame{
			FunctionName: stack.Unknown,
			FileName:     stack.Unknown,
		}, f)
	}
}

func TestParse_TruncatesToMaxFrames(t *testing.T) {
	t.Parallel()

	lines := []string{"Error: deep"}
	for i := 0; i < 10; i++ {
		lines = append(lines, "    at fn (/a.js:1:1)")
	}

	assert.Len(t, stack.Parse(strings.Join(lines, "\n")), stack.MaxFrames)
}

func TestFormat_RoundTripsThroughParse(t *testing.T) {
	t.Parallel()

	in := []stack.Frame{
		{FunctionName: "github.com/acme/svc.(*Handler).Serve", FileName: "/src/svc/handler.go", LineNumber: 88, ColumnNumber: 0},
		{FunctionName: "net/http.HandlerFunc.ServeHTTP", FileName: "/go/src/net/http/server.go", LineNumber: 2166, ColumnNumber: 4},
	}

	text := stack.Format("HttpError: Not Found", in)
	assert.Equal(t,
		"HttpError: Not Found\n"+
			"    at github.com/acme/svc.(*Handler).Serve (/src/svc/handler.go:88:0)\n"+
			"    at net/http.HandlerFunc.ServeHTTP (/go/src/net/http/server.go:2166:4)",
		text,
	)

	assert.Equal(t, stack.Frames(in), stack.Parse(text))
}

func TestFormat_WithoutHeader(t *testing.T) {
	t.Parallel()

	text := stack.Format("", []stack.Frame{{FunctionName: "f", FileName: "a.go", LineNumber: 1, ColumnNumber: 2}})
	assert.Equal(t, "    at f (a.go:1:2)", text)
}

func TestCallers_CapturesCallingFunction(t *testing.T) {
	t.Parallel()

	frames := stack.Callers(0, nil)
	require.NotEmpty(t, frames)
	assert.Contains(t, frames[0].FunctionName, "TestCallers_CapturesCallingFunction")
	assert.True(t, strings.HasSuffix(frames[0].FileName, "stack_test.go"))
	assert.Positive(t, frames[0].LineNumber)
	assert.Zero(t, frames[0].ColumnNumber)
}

func TestCallers_KeepFilter(t *testing.T) {
	t.Parallel()

	frames := stack.Callers(0, func(fn string) bool { return strings.HasPrefix(fn, "runtime.") })
	for _, f := range frames {
		assert.True(t, strings.HasPrefix(f.FunctionName, "runtime."), f.FunctionName)
	}
}

func TestFromPkgErrors(t *testing.T) {
	t.Parallel()

	err := errors.New("origin")

	st, ok := err.(interface{ StackTrace() errors.StackTrace })
	require.True(t, ok)

	frames := stack.FromPkgErrors(st.StackTrace())
	require.NotEmpty(t, frames)
	assert.Contains(t, frames[0].FunctionName, "TestFromPkgErrors")
	assert.True(t, strings.HasSuffix(frames[0].FileName, "stack_test.go"))
}

func TestFrames_MarshalLogArray(t *testing.T) {
	t.Parallel()

	enc := zapcore.NewMapObjectEncoder()
	frames := stack.Frames{{FunctionName: "f", FileName: "a.go", LineNumber: 3, ColumnNumber: 1}}

	require.NoError(t, enc.AddArray("stack", frames))

	got, ok := enc.Fields["stack"].([]interface{})
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, map[string]interface{}{
		"functionName": "f",
		"fileName":     "a.go",
		"lineNumber":   3,
		"columnNumber": 1,
	}, got[0])
}

func FuzzParse(f *testing.F) {
	f.Add("Error\n    at f (a.js:1:2)")
	f.Add("")
	f.Add("\n\n\n\n\n")
	f.Fuzz(func(t *testing.T, raw string) {
		if got := stack.Parse(raw); len(got) > stack.MaxFrames {
			t.Fatalf("Parse returned %d frames", len(got))
		}
	})
}
