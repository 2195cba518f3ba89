package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"homestay/internal/observability"
)

// httpMetrics records request count and latency per route.
func httpMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		observability.ObserveHTTP(c.Path(), c.Request().Method, status, time.Since(start))
		return err
	}
}
