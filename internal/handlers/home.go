package handlers

import (
	"net/http"

	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/view"
	"github.com/bitlance/web/web/src/templates/layouts"
	"github.com/bitlance/web/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// HomeHandler handles requests for the landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	_, err := auth.Load(c)
	page := view.AdaptGomponentToTempl(pages.Home(pages.HomeData{SignedIn: err == nil}))
	return c.Render(http.StatusOK, "", layouts.Base("Home", view.GetFlashData(c), page))
}

// HealthHandler reports liveness and, on /health/upstream, whether the
// marketplace API answers.
type HealthHandler struct {
	marketplace domain.Marketplace
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(marketplace domain.Marketplace) *HealthHandler {
	return &HealthHandler{marketplace: marketplace}
}

// Health answers OK while the process is serving.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Upstream pings the marketplace API.
func (h *HealthHandler) Upstream(c echo.Context) error {
	if err := h.marketplace.Ping(c.Request().Context()); err != nil {
		return c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
	}
	return c.String(http.StatusOK, "OK")
}
