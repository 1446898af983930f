package auth

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bitlance/web/internal/domain"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie holding the signed-in user.
	SessionName = "bitlance-session"

	keyUser    = "user"
	keyToken   = "token"
	keyExpires = "expires"

	sessionMaxAge = 86400 * 7 // 7 days
)

var (
	// ErrNoSession is returned by Load when no user is signed in.
	ErrNoSession = errors.New("no active session")
	// ErrInvalidSession is returned by Load when the cookie cannot be decoded,
	// e.g. after the session secret changed. It wraps ErrNoSession.
	ErrInvalidSession = fmt.Errorf("%w: undecodable session cookie", ErrNoSession)
)

func init() {
	gob.Register(&domain.User{})
}

// NewCookieStore builds the cookie store used by the session middleware.
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Session is what the front end remembers about a signed-in user.
type Session struct {
	User    *domain.User
	Token   string
	Expires time.Time
}

// Expired reports whether the upstream token has expired at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.Expires.IsZero() && now.After(s.Expires)
}

// get returns the session for the request. A cookie that fails to decode
// still yields a fresh session; stale reports that case so callers can
// overwrite the cookie instead of failing.
func get(c echo.Context) (sess *sessions.Session, stale bool, err error) {
	sess, err = session.Get(SessionName, c)
	if err != nil {
		if sess == nil {
			return nil, false, err
		}
		slog.Debug("Discarding undecodable session cookie", "error", err)
		return sess, true, nil
	}
	return sess, false, nil
}

// Save stores the session in the cookie.
func Save(c echo.Context, s *Session) error {
	sess, _, err := get(c)
	if err != nil {
		return err
	}
	sess.Values[keyUser] = s.User
	sess.Values[keyToken] = s.Token
	if s.Expires.IsZero() {
		delete(sess.Values, keyExpires)
	} else {
		sess.Values[keyExpires] = s.Expires.Unix()
	}
	if c.Request().TLS != nil {
		sess.Options.Secure = true
	}
	return sess.Save(c.Request(), c.Response())
}

// Load reads the session from the cookie.
func Load(c echo.Context) (*Session, error) {
	sess, stale, err := get(c)
	if err != nil {
		return nil, err
	}
	if stale {
		return nil, ErrInvalidSession
	}
	user, ok := sess.Values[keyUser].(*domain.User)
	if !ok || user == nil || user.ID == "" {
		return nil, ErrNoSession
	}
	s := &Session{User: user}
	s.Token, _ = sess.Values[keyToken].(string)
	if exp, ok := sess.Values[keyExpires].(int64); ok {
		s.Expires = time.Unix(exp, 0)
	}
	return s, nil
}

// Clear removes the session cookie. The expiring cookie is written even when
// the current one cannot be decoded.
func Clear(c echo.Context) error {
	sess, _, err := get(c)
	if err != nil {
		return err
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}
