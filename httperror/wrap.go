package httperror

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/pkg/errors"

	"github.com/next-trace/scg-httperror/contract"
	"github.com/next-trace/scg-httperror/stack"
)

// stackTracer is implemented by github.com/pkg/errors values.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Wrap coerces input into an Error bound to the default Settings.
//
// Behavior:
//   - integer and float kinds => New(status) with the default message
//   - string => New(fallback, input); "" falls back to the default message
//   - *Error => returned as-is (same pointer)
//   - other contract.HTTPError values => normalized copy of their fields
//   - maps carrying "httpError": true => rebuilt with FromJSON from their
//     status, message, context and stack entries
//   - other errors => New(fallback, err.Error()) with the source's raw stack
//   - nil => New(fallback)
//
// fallback defaults to 500.
func Wrap(input any, fallback ...int) *Error {
	return defaultSettings.Wrap(input, fallback...)
}

// Wrap is the package-level Wrap bound to s.
func (s *Settings) Wrap(input any, fallback ...int) *Error {
	status := defaultStatus
	if len(fallback) > 0 {
		status = fallback[0]
	}

	if n, ok := numericStatus(input); ok {
		return s.build(n, "", options{})
	}

	switch v := input.(type) {
	case nil:
		return s.build(status, "", options{})
	case string:
		return s.build(status, v, options{})
	case *Error:
		if v == nil {
			return s.build(status, "", options{})
		}

		return v
	case error:
		if hv, ok := v.(contract.HTTPError); ok && hv.IsHTTPError() {
			return s.fromContract(hv)
		}

		e := s.build(status, v.Error(), options{cause: v})
		e.stack = rawStack(v)

		return e
	case map[string]any:
		if Is(v) {
			return s.FromJSON(payloadFromMap(v))
		}

		return s.build(status, fmt.Sprint(v), options{})
	default:
		return s.build(status, fmt.Sprint(v), options{})
	}
}

// payloadFromMap reads the wire fields of a decoded, marker-carrying map.
// Fields of the wrong type are treated as absent.
func payloadFromMap(m map[string]any) Payload {
	var p Payload

	// Zero means absent, as in FromJSON.
	if f, ok := toFloat(m["status"]); ok && f != 0 {
		p.Status = floatStatus(f)
	}

	p.Message, _ = m["message"].(string)
	p.Context, _ = m["context"].(map[string]any)

	switch st := m["stack"].(type) {
	case stack.Frames:
		p.Stack = st
	case []stack.Frame:
		p.Stack = st
	case []any:
		b, err := json.Marshal(st)
		if err == nil && json.Unmarshal(b, &p.Stack) != nil {
			p.Stack = nil
		}
	}

	return p
}

// numericStatus narrows integer and float kinds to a status clamped to
// MinStatus..MaxStatus.
func numericStatus(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}

	return floatStatus(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	return 0, false
}

func floatStatus(v float64) int {
	switch {
	case math.IsNaN(v):
		return MinStatus
	case v < MinStatus:
		return MinStatus
	case v > MaxStatus:
		return MaxStatus
	}

	return int(v)
}

// fromContract copies a foreign HTTP error implementation into an Error.
func (s *Settings) fromContract(v contract.HTTPError) *Error {
	headers := v.Header()
	if headers == nil {
		headers = http.Header{}
	}

	e := s.build(v.HTTPStatus(), v.Message(), options{
		context: v.Context(),
		headers: headers,
		cause:   v,
	})
	e.stack = v.Stack()

	return e
}

// rawStack extracts stack text from err: Stack() text first, then a
// github.com/pkg/errors trace, otherwise empty.
func rawStack(err error) string {
	switch v := err.(type) {
	case stack.Source:
		return v.Stack()
	case stackTracer:
		return stack.Format(stackHeader(err.Error()), stack.FromPkgErrors(v.StackTrace()))
	}

	return ""
}

// JSON wraps input and returns its JSON payload.
func JSON(input any, fallback ...int) Payload { return Wrap(input, fallback...).ToJSON() }

// Response wraps input and returns it rendered as an HTTP response.
func Response(input any, fallback ...int) *http.Response {
	return Wrap(input, fallback...).ToResponse()
}

// String wraps input and returns "<status> - <message>".
func String(input any, fallback ...int) string { return Wrap(input, fallback...).String() }

// Is reports whether v structurally identifies as an HTTP error: a value whose
// IsHTTPError method reports true, or a map carrying "httpError": true.
func Is(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case interface{ IsHTTPError() bool }:
		return x.IsHTTPError()
	case map[string]any:
		marker, ok := x["httpError"].(bool)
		return ok && marker
	}

	return false
}
