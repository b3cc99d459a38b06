package stack

import (
	"go.uber.org/zap/zapcore"
)

const (
	// MaxFrames bounds the number of frames Parse returns.
	MaxFrames = 3

	// Anonymous names a frame whose line matched but carried no function.
	Anonymous = "<anonymous>"

	// Unknown fills the fields of a frame whose line could not be parsed.
	Unknown = "<unknown>"
)

// Frame is one parsed entry of a stack trace.
type Frame struct {
	FunctionName string `json:"functionName"`
	FileName     string `json:"fileName"`
	LineNumber   int    `json:"lineNumber"`
	ColumnNumber int    `json:"columnNumber"`
}

// Frames is an ordered trace, most recent call first.
type Frames []Frame

// Source is anything exposing raw stack text.
type Source interface {
	Stack() string
}

var (
	_ zapcore.ObjectMarshaler = Frame{}
	_ zapcore.ArrayMarshaler  = Frames{}
)

func unknownFrame() Frame {
	return Frame{FunctionName: Unknown, FileName: Unknown}
}

func (f Frame) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("functionName", f.FunctionName)
	enc.AddString("fileName", f.FileName)
	enc.AddInt("lineNumber", f.LineNumber)
	enc.AddInt("columnNumber", f.ColumnNumber)

	return nil
}

func (fs Frames) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range fs {
		if err := enc.AppendObject(f); err != nil {
			return err
		}
	}

	return nil
}
