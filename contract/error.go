// Package contract exposes the minimal HTTP error interface used by other packages.
//
// Implementations must ensure Context returns a defensive copy and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

import "net/http"

// HTTPError is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Respect Go initialisms (HTTPStatus).
//   - Keep HTTPStatus within 400..599 and Message non-empty.
//   - Ensure Context() returns a defensive copy (never the internal map).
//   - Report IsHTTPError() == true; it is the structural marker other code
//     checks instead of a concrete type.
//   - Support errors.Unwrap via Unwrap().
type HTTPError interface {
	error
	HTTPStatus() int
	Message() string
	// Context returns a defensive copy; NEVER return the internal map directly.
	Context() map[string]any
	Header() http.Header
	// Stack returns raw stack text, "" when none was recorded.
	Stack() string
	IsHTTPError() bool
	Unwrap() error
}
