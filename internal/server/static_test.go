package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveStatic(t *testing.T, fsys afero.Fs, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	registerStatic(e, fsys)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewStaticFS(t *testing.T) {
	t.Run("embedded assets by default", func(t *testing.T) {
		fsys, err := newStaticFS("")
		require.NoError(t, err)

		ok, err := afero.Exists(fsys, "css/app.css")
		require.NoError(t, err)
		assert.True(t, ok)

		rec := serveStatic(t, fsys, "/static/css/app.css")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ".login-page")
	})

	t.Run("directory on disk", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "app.css"), []byte("body{}"), 0o644))

		fsys, err := newStaticFS(dir)
		require.NoError(t, err)

		rec := serveStatic(t, fsys, "/static/css/app.css")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "body{}", rec.Body.String())

		assert.Error(t, afero.WriteFile(fsys, "css/other.css", []byte("x"), 0o644), "static fs is read-only")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := newStaticFS(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "app.css")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err := newStaticFS(file)
		assert.Error(t, err)
	})
}
