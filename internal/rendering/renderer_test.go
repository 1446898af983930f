package rendering

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestUniversalRenderer(t *testing.T) {
	r := NewUniversalRenderer()

	t.Run("renders gomponents nodes", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), h.Span(g.Text("node")))
		require.NoError(t, err)
		assert.Equal(t, "<span>node</span>", string(out))
	})

	t.Run("renders templ components", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), templ.Raw("<b>templ</b>"))
		require.NoError(t, err)
		assert.Equal(t, "<b>templ</b>", string(out))
	})

	t.Run("rejects unsupported values", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.ErrorContains(t, err, "unsupported component type: int")
	})

	t.Run("writes full pages through echo", func(t *testing.T) {
		e := echo.New()
		e.Renderer = r
		e.GET("/page", func(c echo.Context) error {
			return r.RenderPage(c, http.StatusTeapot, h.H1(g.Text("Title")))
		})
		e.GET("/render", func(c echo.Context) error {
			return c.Render(http.StatusOK, "", h.H2(g.Text("Via c.Render")))
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "<h1>Title</h1>", rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/render", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<h2>Via c.Render</h2>", rec.Body.String())
	})
}
