package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/events"
	"github.com/bitlance/web/internal/middleware"
	"github.com/bitlance/web/internal/view"
	"github.com/bitlance/web/web/src/templates/layouts"
	"github.com/bitlance/web/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// User-visible login messages.
const (
	MsgMissingCredentials = "Please enter both email and password."
	MsgLoginFailed        = "Login failed. Please try again."
	MsgLoginError         = "An error occurred. Please try again."
)

// Invalidator drops cached upstream data for a user.
type Invalidator interface {
	Invalidate(ctx context.Context, userID string)
}

// AuthHandler handles sign-in and sign-out.
type AuthHandler struct {
	marketplace domain.Marketplace
	tokens      *auth.TokenParser
	emitter     *events.Emitter
	invalidator Invalidator
}

// NewAuthHandler creates a new AuthHandler. emitter and invalidator may be nil.
func NewAuthHandler(marketplace domain.Marketplace, tokens *auth.TokenParser, emitter *events.Emitter, invalidator Invalidator) *AuthHandler {
	return &AuthHandler{
		marketplace: marketplace,
		tokens:      tokens,
		emitter:     emitter,
		invalidator: invalidator,
	}
}

// LoginGet renders the login page (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	email := view.PopFormValue(c, "email")
	flashes := view.GetFlashData(c)

	// Errors are shown inline under the form rather than in the flash area.
	data := pages.LoginData{Email: email}
	if len(flashes.Error) > 0 {
		data.Error = flashes.Error[len(flashes.Error)-1]
		flashes.Error = nil
	}

	page := view.AdaptGomponentToTempl(pages.Login(data))
	return c.Render(http.StatusOK, "", layouts.Base("Login", flashes, page))
}

// LoginPost handles the login form submission.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		logger.Debug("Failed to bind login form", "error", err)
	}
	creds.Email = strings.TrimSpace(creds.Email)

	if err := c.Validate(&creds); err != nil {
		return h.loginFailed(c, creds.Email, MsgMissingCredentials, "missing_credentials")
	}

	res, err := h.marketplace.UserLogin(ctx, creds)
	if err == nil && res == nil {
		err = errors.New("empty login response")
	}
	if err != nil {
		logger.Error("Login request failed", "email", creds.Email, "error", err)
		return h.loginFailed(c, creds.Email, MsgLoginError, "upstream_error")
	}

	sess, err := h.tokens.SessionFromLogin(res)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		logger.Info("Login rejected", "email", creds.Email, "status", res.Status)
		return h.loginFailed(c, creds.Email, LoginErrorMessage(res.Error), "rejected")
	}
	if err != nil {
		reason := "token_invalid"
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			reason = "token_expired"
		case errors.Is(err, auth.ErrNoUserID):
			reason = "missing_user"
		}
		logger.Warn("Rejected login response", "email", creds.Email, "reason", reason, "error", err)
		return h.loginFailed(c, creds.Email, MsgLoginFailed, reason)
	}
	user := sess.User

	if err := auth.Save(c, sess); err != nil {
		logger.Error("Failed to save session", "user_id", user.ID, "error", err)
		return err
	}

	h.emitter.Emit(ctx, events.TopicLoginSucceeded, events.Event{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		RequestID: middleware.RequestID(c),
	})
	logger.Info("User signed in", "user_id", user.ID)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) loginFailed(c echo.Context, email, message, reason string) error {
	view.SetFlashError(c, message)
	if email != "" {
		view.SetFormValue(c, "email", email)
	}
	h.emitter.Emit(c.Request().Context(), events.TopicLoginFailed, events.Event{
		Email:     email,
		Reason:    reason,
		RequestID: middleware.RequestID(c),
	})
	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout clears the session and returns to the landing page.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if s, err := auth.Load(c); err == nil {
		if h.invalidator != nil {
			h.invalidator.Invalidate(ctx, s.User.ID)
		}
		h.emitter.Emit(ctx, events.TopicLogout, events.Event{
			UserID:    s.User.ID,
			Email:     s.User.Email,
			RequestID: middleware.RequestID(c),
		})
	}
	if err := auth.Clear(c); err != nil {
		middleware.FromContext(ctx).Error("Failed to clear session", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// LoginErrorMessage extracts the text shown to the user from a backend error
// such as "AuthError: Invalid credentials". The message is the segment after
// the first colon; an error without a colon is shown whole.
func LoginErrorMessage(apiError string) string {
	msg := apiError
	if parts := strings.Split(apiError, ":"); len(parts) > 1 {
		msg = parts[1]
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return MsgLoginFailed
	}
	return msg
}
