package testutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/domain"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// NewUser returns the user the fakes sign in by default.
func NewUser() domain.User {
	return domain.User{
		ID:       "user-1",
		Username: "ada",
		Email:    "ada@example.com",
		Name:     "Ada Lovelace",
		Role:     "freelancer",
	}
}

// SessionCookies signs user in and returns the cookies a browser would send
// back. They are signed with SessionSecret, so any echo instance using
// auth.NewCookieStore(SessionSecret) accepts them.
func SessionCookies(t *testing.T, user domain.User, token string) []*http.Cookie {
	t.Helper()

	e := echo.New()
	e.Use(session.Middleware(auth.NewCookieStore(SessionSecret)))
	e.GET("/", func(c echo.Context) error {
		err := auth.Save(c, &auth.Session{
			User:    &user,
			Token:   token,
			Expires: time.Now().Add(time.Hour),
		})
		if err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("failed to create session: status %d", rec.Code)
	}
	return ResponseCookies(rec)
}

// Flashes decodes the flash messages stored under key in the response
// cookies.
func Flashes(t *testing.T, rec *httptest.ResponseRecorder, key string) []string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range ResponseCookies(rec) {
		req.AddCookie(ck)
	}
	sess, err := auth.NewCookieStore(SessionSecret).Get(req, "flash-session")
	if err != nil {
		t.Fatalf("failed to decode flash session: %v", err)
	}
	var out []string
	for _, f := range sess.Flashes(key) {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ResponseCookies returns the cookies a browser would keep after rec: the
// last Set-Cookie per name wins and deleted cookies are dropped.
func ResponseCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	var order []string
	latest := map[string]*http.Cookie{}
	for _, ck := range rec.Result().Cookies() {
		if _, seen := latest[ck.Name]; !seen {
			order = append(order, ck.Name)
		}
		latest[ck.Name] = ck
	}
	var out []*http.Cookie
	for _, name := range order {
		if ck := latest[name]; ck.MaxAge >= 0 && ck.Value != "" {
			out = append(out, ck)
		}
	}
	return out
}
