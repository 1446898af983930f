package jobs

import (
	"context"
	"log/slog"

	"github.com/bitlance/web/internal/module"
	"github.com/bitlance/web/internal/registry"
	"github.com/labstack/echo/v4"
)

// JobsModule serves the pages the dashboard links to.
type JobsModule struct {
	module.BaseModule
}

// New creates a new JobsModule.
func New() *JobsModule {
	return &JobsModule{}
}

// Name returns the module name.
func (m *JobsModule) Name() string {
	return "jobs"
}

// Boot registers the job routes on the authenticated group.
func (m *JobsModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting JobsModule: Setting up routes...")
	handler := NewHandler(registry.MustGet(reg, registry.MarketplaceKey))

	g.GET("/job", handler.Browse)
	g.GET("/requests/:job_id", handler.Requests)
	return nil
}
