package jobs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/registry"
	"github.com/bitlance/web/internal/rendering"
	"github.com/bitlance/web/internal/testutils"
	"github.com/bitlance/web/web/src/templates/pages"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJobsTest(t *testing.T, fake *testutils.FakeMarketplace) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(auth.NewCookieStore(testutils.SessionSecret)))

	reg := registry.New()
	registry.Set[domain.Marketplace](reg, registry.MarketplaceKey, fake)
	require.NoError(t, New().Boot(context.Background(), e.Group(""), reg))
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestBrowse(t *testing.T) {
	t.Run("lists open jobs", func(t *testing.T) {
		fake := &testutils.FakeMarketplace{OpenJobs: []domain.Job{{ID: "j1", Title: "Logo design"}}}
		rec := get(setupJobsTest(t, fake), "/job")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `href="/requests/j1"`)
		assert.Contains(t, rec.Body.String(), "Logo design")
	})

	t.Run("shows an error when the list fails", func(t *testing.T) {
		fake := &testutils.FakeMarketplace{ListErr: errors.New("boom")}
		rec := get(setupJobsTest(t, fake), "/job")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgListError)
	})
}

func TestRequests(t *testing.T) {
	fake := &testutils.FakeMarketplace{Jobs: map[string]domain.Job{
		"j1": {ID: "j1", Title: "Logo design", Description: "Vector logo", Category: domain.CategoryDesign},
	}}
	e := setupJobsTest(t, fake)

	rec := get(e, "/requests/j1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Logo design - Bitlance</title>")
	assert.Contains(t, rec.Body.String(), "Vector logo")

	rec = get(e, "/requests/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job not found.")
}

func TestRequests_EscapedID(t *testing.T) {
	const id = "team/a b?x"
	fake := &testutils.FakeMarketplace{Jobs: map[string]domain.Job{
		id: {ID: id, Title: "Odd id"},
	}}
	e := setupJobsTest(t, fake)

	path := pages.JobPath(id)
	assert.Equal(t, "/requests/team%2Fa%20b%3Fx", path)

	rec := get(e, path)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Odd id")
}
