package server

import (
	"context"
	"fmt"
	"log/slog"

	appmiddleware "github.com/bitlance/web/internal/middleware"
	"github.com/bitlance/web/internal/module"
	"github.com/bitlance/web/internal/registry"
)

// InitModules publishes the core services in reg, then registers and boots
// every module. Module routes are mounted on a group that requires a signed-in
// user.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	registry.Set(reg, registry.MarketplaceKey, s.marketplace)
	registry.Set(reg, registry.EmitterKey, s.emitter)
	registry.Set(reg, registry.RendererKey, s.renderer)

	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	protected := s.E.Group("", appmiddleware.RequireUser)
	for _, m := range modules {
		if err := m.Boot(ctx, protected, reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}
	s.modules = append(s.modules, modules...)
	return nil
}
