package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/testutils"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionStore(t *testing.T) {
	signIn := func(t *testing.T, baseURL string) *http.Cookie {
		t.Helper()
		cfg := testutils.ConfigForTests(t, map[string]string{"APP_BASE_URL": baseURL})

		e := echo.New()
		e.Use(session.Middleware(newSessionStore(cfg)))
		e.GET("/", func(c echo.Context) error {
			return auth.Save(c, &auth.Session{User: &domain.User{ID: "u-1"}, Token: "tok"})
		})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		for _, ck := range rec.Result().Cookies() {
			if ck.Name == auth.SessionName {
				return ck
			}
		}
		require.Fail(t, "no session cookie set")
		return nil
	}

	t.Run("https base url marks cookies secure", func(t *testing.T) {
		ck := signIn(t, "https://bitlance.example")
		assert.True(t, ck.Secure)
		assert.True(t, ck.HttpOnly)
	})

	t.Run("plain http leaves them insecure", func(t *testing.T) {
		ck := signIn(t, "http://localhost:8081")
		assert.False(t, ck.Secure)
	})
}
