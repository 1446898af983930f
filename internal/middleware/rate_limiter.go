package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// LoginAttemptsPerMinute bounds login submissions per client IP.
const LoginAttemptsPerMinute = 10

// RateLimiter limits requests to LoginAttemptsPerMinute per IP address for
// the routes it is applied to.
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithRate(LoginAttemptsPerMinute)
}

// RateLimiterWithRate is RateLimiter with a custom per-minute rate.
func RateLimiterWithRate(perMinute int) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / 60),
			Burst:     perMinute,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "ip", identifier, "path", c.Path())
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
