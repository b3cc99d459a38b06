// Package httperror provides a normalized HTTP error value.
//
// An Error carries a status clamped to 400..599, a message that falls back to
// a fixed per-status default, an optional context map, response headers and
// raw stack text. Heterogeneous failures (status codes, strings, Go errors,
// existing Errors) are coerced with Wrap and rendered with ToJSON, ToResponse
// or String.
//
// Behavior that used to be process-wide (whether stacks are serialized and
// the context merged into every new error) lives in Settings. The package
// level functions use a shared default Settings; callers that need isolation
// build their own with NewSettings and construct errors through it.
//
// Key characteristics:
//   - Construction never fails; invalid statuses are clamped, not rejected
//   - Identification is structural (IsHTTPError / "httpError" marker), so
//     values decoded from foreign payloads are recognized too
//   - JSON wire shape {context, message, stack, status} with at most three
//     parsed stack frames
//   - Optional underlying cause preserved for errors.Is / errors.As
package httperror
