package httperror

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ zapcore.ObjectMarshaler = (*Error)(nil)

// MarshalLogObject lets an Error be logged with zap.Object. The stack follows
// the bound Settings, the same as ToJSON.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e == nil {
		return nil
	}

	p := e.ToJSON()

	enc.AddInt("status", p.Status)
	enc.AddString("message", p.Message)

	if p.Context != nil {
		if err := enc.AddReflected("context", p.Context); err != nil {
			return err
		}
	}

	if len(p.Stack) > 0 {
		return enc.AddArray("stack", p.Stack)
	}

	return nil
}

// Field returns a zap field named "error" carrying e's structured form.
func Field(e *Error) zap.Field { return zap.Object("error", e) }
