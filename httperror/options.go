package httperror

import "net/http"

// Option configures an Error during construction.
type Option func(*options)

type options struct {
	context map[string]any
	headers http.Header
	cause   error
}

// WithContext sets the instance context. It is merged over the Settings'
// default context; the caller's map is not retained.
func WithContext(ctx map[string]any) Option { return func(o *options) { o.context = ctx } }

// WithHeaders sets the response headers. The header is kept as given.
func WithHeaders(h http.Header) Option { return func(o *options) { o.headers = h } }

// WithHeaderMap builds the response headers from a plain name to value map.
func WithHeaderMap(m map[string]string) Option {
	return func(o *options) {
		h := make(http.Header, len(m))
		for k, v := range m {
			h.Set(k, v)
		}

		o.headers = h
	}
}

// WithCause sets the underlying cause returned by Unwrap.
func WithCause(cause error) Option { return func(o *options) { o.cause = cause } }
