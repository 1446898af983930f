package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/bitlance/web/internal/apiconfig"
	"github.com/bitlance/web/internal/app"
	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/cache"
	"github.com/bitlance/web/internal/config"
	"github.com/bitlance/web/internal/events"
	"github.com/bitlance/web/internal/logging"
	"github.com/bitlance/web/internal/pubsub"
	"github.com/bitlance/web/internal/registry"
	"github.com/bitlance/web/internal/rendering"
	"github.com/bitlance/web/internal/server"
)

func main() {
	cfg := config.New()
	logging.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Upstream API, decorated with the read-through cache.
	client := apiconfig.NewClient(cfg.GetAPIBaseURL(), cfg.GetAPITimeout())
	var store cache.Cache
	if addr := cfg.GetRedisAddr(); addr != "" {
		store = cache.NewRedis(ctx, cache.RedisOptions{
			Addr:     addr,
			Password: cfg.GetRedisPassword(),
			DB:       cfg.GetRedisDB(),
		})
	} else {
		store = cache.NewMemory()
	}
	marketplace := cache.NewMarketplace(client, store, cfg.GetCacheTTL())

	// Audit events.
	bus := pubsub.NewWatermillBridge()
	emitter := events.NewEmitter(bus)
	if err := events.NewAuditLog(slog.Default()).Start(ctx, bus); err != nil {
		slog.Error("Failed to start audit log", "error", err)
		os.Exit(1)
	}

	renderer := rendering.NewUniversalRenderer()
	s, err := server.New(server.Dependencies{
		Config:      cfg,
		Marketplace: marketplace,
		Tokens:      auth.NewTokenParser(cfg.GetTokenSecret()),
		Emitter:     emitter,
		Invalidator: marketplace,
		Renderer:    renderer,
		Closers:     []io.Closer{bus, store},
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	s.RegisterRoutes()

	if err := s.InitModules(ctx, app.NewModules(), registry.New()); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}

	s.Start()
}
