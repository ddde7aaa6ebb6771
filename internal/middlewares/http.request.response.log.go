package middlewares

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
)

// NewHTTPRequestResponseLogMiddleware writes one http_request line per call. Server errors log at
// error level, rejected calls at warn.
func NewHTTPRequestResponseLogMiddleware(logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []any{
			"request_id", RequestIDFromContext(c),
			"client_id", ClientIDFromContext(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.IP(),
		}
		if key := c.Get(IdempotencyKeyHeader); key != "" {
			attrs = append(attrs, "idempotency_key", key, "replayed", string(c.Response().Header.Peek(IdempotentReplayedHeader)) == "true")
		}

		switch {
		case err != nil:
			logger.Error("http_request", append(attrs, "error", err.Error())...)
			return err
		case status >= fiber.StatusInternalServerError:
			logger.Error("http_request", attrs...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("http_request", attrs...)
		default:
			logger.Info("http_request", attrs...)
		}
		return nil
	}
}
