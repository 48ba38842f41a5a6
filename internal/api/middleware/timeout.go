package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies a longer timeout to the coaching endpoints,
// which wait on completion calls, and a shorter one everywhere else.
func SelectiveTimeoutConfig(defaultTimeout, coachTimeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timeout := defaultTimeout
			if strings.Contains(c.Request().URL.Path, "/coach/") {
				timeout = coachTimeout
			}
			return TimeoutConfig(timeout)(next)(c)
		}
	}
}
