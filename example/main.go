// Package main demonstrates usage of the scg-httperror package.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"go.uber.org/zap"

	"github.com/next-trace/scg-httperror/httperror"
)

func main() {
	logger := zap.NewExample()
	defer func() { _ = logger.Sync() }()

	httperror.SetDefaultContext(map[string]any{"service": "customers"})

	// Direct construction
	e := httperror.New(http.StatusNotFound, "", httperror.WithContext(map[string]any{
		"customer_id": "42",
	}))
	fmt.Println(e, e.HTTPStatus(), e.Message(), e.Context())

	// Wrap heterogeneous failures into the same shape
	for _, in := range []any{409, "upstream timed out", errors.New("row not found"), e} {
		w := httperror.Wrap(in, http.StatusBadGateway)
		logger.Warn("normalized", httperror.Field(w))
	}

	// Render as an HTTP response
	rec := httptest.NewRecorder()
	httperror.Wrap("payload invalid", http.StatusBadRequest).
		SetContext(map[string]any{"field": "email"}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/customers", nil))
	fmt.Println(rec.Code, rec.Body.String())
}
