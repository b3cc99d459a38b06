// Package fiberx renders httperror values through Fiber.
package fiberx

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/next-trace/scg-httperror/httperror"
)

// Config configures ErrorHandler.
type Config struct {
	// Settings used to wrap handler errors. Defaults to httperror.Default().
	Settings *httperror.Settings
	// Logger receives one entry per rendered error. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Send writes e to c: instance headers, then status and the JSON payload.
func Send(c *fiber.Ctx, e *httperror.Error) error {
	for k, vs := range e.Header() {
		for _, v := range vs {
			c.Append(k, v)
		}
	}

	return c.Status(e.HTTPStatus()).JSON(e.ToJSON())
}

// ErrorHandler returns a fiber.ErrorHandler that normalizes every handler
// error into an httperror.Error and sends it. *fiber.Error values keep their
// code and message.
func ErrorHandler(cfg Config) fiber.ErrorHandler {
	s := cfg.Settings
	if s == nil {
		s = httperror.Default()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *fiber.Ctx, err error) error {
		e := normalize(s, err)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			httperror.Field(e),
		}

		if e.HTTPStatus() >= fiber.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Warn("request failed", fields...)
		}

		return Send(c, e)
	}
}

func normalize(s *httperror.Settings, err error) *httperror.Error {
	if fe, ok := err.(*fiber.Error); ok {
		return s.New(fe.Code, fe.Message, httperror.WithCause(fe))
	}

	return s.Wrap(err)
}
