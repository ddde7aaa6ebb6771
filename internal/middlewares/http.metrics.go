package middlewares

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
)

type HTTPObserver interface {
	HTTPObserved(method, route string, status int, duration time.Duration)
}

// NewHTTPMetricsMiddleware labels by route template rather than raw path so addresses in the URL do
// not explode label cardinality.
func NewHTTPMetricsMiddleware(observer HTTPObserver) fiber.Handler {
	return func(c fiber.Ctx) error {
		if observer == nil {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		route := "unmatched"
		if matched := c.Route(); matched != nil && matched.Path != "" {
			route = matched.Path
		}

		status := c.Response().StatusCode()
		if err != nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		observer.HTTPObserved(c.Method(), route, status, time.Since(start))
		return err
	}
}
