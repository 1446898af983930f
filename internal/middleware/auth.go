package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/bitlance/web/internal/apiconfig"
	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/view"
	"github.com/labstack/echo/v4"
)

const (
	UserContextKey = "user"

	// LoginPath is where unauthenticated requests are sent.
	LoginPath = "/login"

	// MsgSessionExpired is flashed when the API stops accepting the session token.
	MsgSessionExpired = "Your session has expired. Please sign in again."
)

// RequireUser protects routes that need a signed-in user. The session user
// is stored in the echo context and the token is attached to the request
// context for upstream API calls.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := auth.Load(c)
		if err != nil {
			logger := FromContext(c.Request().Context())
			switch {
			case errors.Is(err, auth.ErrInvalidSession):
				logger.Info("Clearing undecodable session cookie")
				if err := auth.Clear(c); err != nil {
					logger.Error("Failed to clear session", "error", err)
				}
			case !errors.Is(err, auth.ErrNoSession):
				logger.Warn("Failed to read session", "error", err)
			}
			return redirectToLogin(c)
		}
		if s.Expired(time.Now()) {
			FromContext(c.Request().Context()).Info("Session token expired", "user_id", s.User.ID)
			if err := auth.Clear(c); err != nil {
				FromContext(c.Request().Context()).Error("Failed to clear expired session", "error", err)
			}
			return redirectToLogin(c)
		}

		c.Set(UserContextKey, s.User)
		ctx := apiconfig.WithToken(c.Request().Context(), s.Token)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RedirectIfAuthenticated sends signed-in users to target, e.g. away from
// the login page.
func RedirectIfAuthenticated(target string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s, err := auth.Load(c); err == nil && !s.Expired(time.Now()) {
				return c.Redirect(http.StatusSeeOther, target)
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by RequireUser, or nil.
func CurrentUser(c echo.Context) *domain.User {
	u, _ := c.Get(UserContextKey).(*domain.User)
	return u
}

// ExpireSession signs the user out after the API rejected the session token
// and sends them to the login page with MsgSessionExpired.
func ExpireSession(c echo.Context) error {
	if err := auth.Clear(c); err != nil {
		FromContext(c.Request().Context()).Error("Failed to clear session", "error", err)
	}
	view.SetFlashError(c, MsgSessionExpired)
	return redirectToLogin(c)
}

// redirectToLogin redirects, using HX-Redirect for htmx requests so the whole
// page navigates instead of swapping the login page into a fragment.
func redirectToLogin(c echo.Context) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", LoginPath)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, LoginPath)
}
