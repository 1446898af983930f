package server

import (
	"github.com/bitlance/web/internal/handlers"
	"github.com/bitlance/web/internal/middleware"
)

// RegisterRoutes sets up the public routes. Authenticated pages are
// registered by the modules in InitModules.
func (s *Server) RegisterRoutes() {
	homeHandler := handlers.NewHomeHandler()
	authHandler := handlers.NewAuthHandler(s.marketplace, s.tokens, s.emitter, s.invalidator)
	healthHandler := handlers.NewHealthHandler(s.marketplace)
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", homeHandler.HomeGet)

	s.E.GET("/login", authHandler.LoginGet, middleware.RedirectIfAuthenticated("/dashboard"))
	s.E.POST("/login", authHandler.LoginPost, rateLimiter)
	s.E.POST("/logout", authHandler.Logout)
	s.E.GET("/logout", authHandler.Logout)

	s.E.GET("/health", healthHandler.Health)
	s.E.GET("/health/upstream", healthHandler.Upstream)
}
