package httperror

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
)

// ToResponse renders the error as an HTTP response whose body is ToJSON, whose
// status mirrors the error and whose headers copy the error's headers.
// Content-Type is set to application/json unless the error already carries one.
// A nil Error renders as a 500 with the default message.
func (e *Error) ToResponse() *http.Response {
	e = e.placeholder()

	body := e.body()
	header := e.responseHeader()
	header.Set("Content-Length", strconv.Itoa(len(body)))

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", e.status, statusText(e.status)),
		StatusCode:    e.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// Render writes the same response as ToResponse to w.
func (e *Error) Render(w http.ResponseWriter) error {
	e = e.placeholder()

	body := e.body()

	dst := w.Header()
	for k, vs := range e.responseHeader() {
		dst[k] = vs
	}

	w.WriteHeader(e.status)

	if _, err := w.Write(body); err != nil {
		return errors.Wrap(err, "httperror: write response body")
	}

	return nil
}

// ServeHTTP lets an Error be mounted as an http.Handler.
// A failed body write means the client is gone, so the error is dropped.
func (e *Error) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	_ = e.Render(w)
}

func (e *Error) responseHeader() http.Header {
	h := e.headers.Clone()
	if h == nil {
		h = http.Header{}
	}

	if h.Get(contentTypeHeader) == "" {
		h.Set(contentTypeHeader, contentTypeJSON)
	}

	return h
}

// body encodes ToJSON. A context holding values encoding/json rejects is
// dropped so a response is always produced.
func (e *Error) body() []byte {
	p := e.ToJSON()

	b, err := json.Marshal(p)
	if err != nil {
		p.Context = nil
		b, _ = json.Marshal(p)
	}

	return b
}

func statusText(code int) string {
	if t := http.StatusText(code); t != "" {
		return t
	}

	return DefaultMessage(code)
}
