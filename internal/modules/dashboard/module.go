package dashboard

import (
	"context"
	"log/slog"

	"github.com/bitlance/web/internal/module"
	"github.com/bitlance/web/internal/registry"
	"github.com/labstack/echo/v4"
)

// DashboardModule implements the module.Module interface for the dashboard.
// Its services are taken from the registry at boot.
type DashboardModule struct {
	module.BaseModule
}

// New creates a new instance of the DashboardModule.
func New() *DashboardModule {
	return &DashboardModule{}
}

// Name returns the module name.
func (m *DashboardModule) Name() string {
	return "dashboard"
}

// Boot registers the dashboard routes on the authenticated group.
func (m *DashboardModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting DashboardModule: Setting up routes...")
	handler := NewHandler(
		registry.MustGet(reg, registry.MarketplaceKey),
		registry.MustGet(reg, registry.EmitterKey),
		registry.MustGet(reg, registry.RendererKey),
	)

	g.GET("/dashboard", handler.Get)
	g.GET("/dashboard/panel", handler.Panel)
	g.POST("/dashboard/jobs", handler.CreateJob)
	return nil
}
