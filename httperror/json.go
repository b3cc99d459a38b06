package httperror

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/next-trace/scg-httperror/stack"
)

// fromJSONMessage is the message FromJSON uses when the payload has none.
const fromJSONMessage = "HttpError"

// Payload is the JSON wire shape of an Error.
type Payload struct {
	Context map[string]any `json:"context"`
	Message string         `json:"message"`
	Stack   stack.Frames   `json:"stack"`
	Status  int            `json:"status"`
}

var (
	_ json.Marshaler = (*Error)(nil)
)

// ToJSON returns the wire payload. Stack is parsed from the raw stack text when
// the bound Settings include stacks and is empty otherwise; it is never nil.
// A nil Error renders as a 500 with the default message.
func (e *Error) ToJSON() Payload {
	e = e.placeholder()

	frames := stack.Frames{}
	if e.boundSettings().IncludeStack() {
		frames = stack.Parse(e.stack)
	}

	return Payload{
		Context: cloneMap(e.context),
		Message: e.message,
		Stack:   frames,
		Status:  e.status,
	}
}

// MarshalJSON encodes ToJSON.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToJSON())
}

// FromJSON rebuilds an Error from a payload using the default Settings.
func FromJSON(p Payload) *Error { return defaultSettings.FromJSON(p) }

// FromJSON rebuilds an Error bound to s.
//
// A zero status becomes 500 and an empty message "HttpError". When the payload
// carries frames they are re-encoded as raw stack text behind a header line,
// so a later ToJSON yields the same frames.
func (s *Settings) FromJSON(p Payload) *Error {
	status := p.Status
	if status == 0 {
		status = defaultStatus
	}

	message := p.Message
	if message == "" {
		message = fromJSONMessage
	}

	e := s.build(status, message, options{context: p.Context})
	if len(p.Stack) > 0 {
		e.stack = stack.Format(stackHeader(e.message), p.Stack)
	}

	return e
}

// Decode parses a JSON payload and rebuilds it with the default Settings.
func Decode(data []byte) (*Error, error) { return defaultSettings.Decode(data) }

// Decode parses a JSON payload and rebuilds it bound to s.
func (s *Settings) Decode(data []byte) (*Error, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "httperror: decode payload")
	}

	return s.FromJSON(p), nil
}
