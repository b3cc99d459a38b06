package httperror

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/next-trace/scg-httperror/contract"
	"github.com/next-trace/scg-httperror/stack"
)

const (
	// MinStatus and MaxStatus bound every constructed Error.
	MinStatus = 400
	MaxStatus = 599

	// defaultStatus is used by Wrap and FromJSON when no status is given.
	defaultStatus = 500

	// Name heads the raw stack text of every Error.
	Name = "HttpError"
)

// Error is the canonical HTTP error value.
//
// Fields:
//   - status:  HTTP status, always within MinStatus..MaxStatus
//   - message: never empty, defaults per status
//   - context: structured metadata, nil when absent
//   - headers: response headers, never nil
//   - stack:   raw stack text ("HttpError: msg" header then "    at" lines)
type Error struct {
	status   int
	message  string
	context  map[string]any
	headers  http.Header
	stack    string
	cause    error
	settings *Settings
}

// compile-time guarantee that *Error implements contract.HTTPError
var _ contract.HTTPError = (*Error)(nil)

// pkgPrefix identifies frames that belong to this package so captured stacks
// start at the caller.
var pkgPrefix = func() string {
	name := reflect.TypeOf(Error{}).PkgPath()
	return name + "."
}()

// ------ standard error interface

func (e *Error) Error() string { return e.String() }

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// String renders "<status> - <message>".
func (e *Error) String() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d - %s", e.status, e.message)
}

// ------ contract.HTTPError getters

func (e *Error) HTTPStatus() int     { return e.status }
func (e *Error) Message() string     { return e.message }
func (e *Error) Header() http.Header { return e.headers }
func (e *Error) Stack() string       { return e.stack }

// Context returns a deep copy of the context, or nil when there is none.
func (e *Error) Context() map[string]any { return cloneMap(e.context) }

// IsHTTPError is the structural marker checked by Is. It is true for every
// non-nil Error.
func (e *Error) IsHTTPError() bool { return e != nil }

// ------ core constructors

// New creates an Error bound to the default Settings. An empty message selects
// the default message for the clamped status.
func New(status int, message string, opts ...Option) *Error {
	return defaultSettings.New(status, message, opts...)
}

// New creates an Error bound to s.
func (s *Settings) New(status int, message string, opts ...Option) *Error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return s.build(status, message, o)
}

func (s *Settings) build(status int, message string, o options) *Error {
	status = clamp(status, MinStatus, MaxStatus)
	if message == "" {
		message = DefaultMessage(status)
	}

	headers := o.headers
	if headers == nil {
		headers = http.Header{}
	}

	return &Error{
		status:   status,
		message:  message,
		context:  s.mergeContext(o.context),
		headers:  headers,
		stack:    captureStack(message),
		cause:    o.cause,
		settings: s,
	}
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// SetContext shallow-merges partial into the context and returns the same
// receiver. Keys not present in partial are left alone.
func (e *Error) SetContext(partial map[string]any) *Error {
	if e == nil || partial == nil {
		return e
	}

	if e.context == nil {
		e.context = make(map[string]any, len(partial))
	}

	for k, v := range partial {
		e.context[k] = cloneValue(v)
	}

	return e
}

// DefaultMessage returns the fixed message for an exact status code, or
// "Error" for codes without one.
func DefaultMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusGone:
		return "Gone"
	case http.StatusInternalServerError:
		return "Internal Server Error"
	case 599:
		return "Network Connect Timeout Error"
	default:
		return "Error"
	}
}

func clamp(v, lo, hi int) int { return min(max(v, lo), hi) }

func captureStack(message string) string {
	frames := stack.Callers(1, func(fn string) bool {
		return !strings.HasPrefix(fn, pkgPrefix)
	})

	return stack.Format(stackHeader(message), frames)
}

// headerBreaks folds line breaks so a message stays on the header line that
// stack.Parse skips.
var headerBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// stackHeader returns the first line of raw stack text for message.
func stackHeader(message string) string {
	return Name + ": " + headerBreaks.Replace(message)
}

// placeholder stands in for a nil receiver when rendering: a 500 with the
// default message and no stack.
func (e *Error) placeholder() *Error {
	if e != nil {
		return e
	}

	return &Error{
		status:  defaultStatus,
		message: DefaultMessage(defaultStatus),
		headers: http.Header{},
	}
}

// cloneMap copies in, descending into nested string-keyed maps. Nil stays nil
// and an empty map stays empty.
func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}

	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	if mv, ok := v.(map[string]any); ok {
		return cloneMap(mv)
	}

	return v
}

func (e *Error) boundSettings() *Settings {
	if e.settings == nil {
		return defaultSettings
	}

	return e.settings
}
