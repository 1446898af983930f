package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/config"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/events"
	"github.com/bitlance/web/internal/handlers"
	appmiddleware "github.com/bitlance/web/internal/middleware"
	"github.com/bitlance/web/internal/module"
	"github.com/bitlance/web/internal/rendering"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
)

// Dependencies holds everything the HTTP server needs. Emitter, Invalidator,
// Renderer, Echo and StaticFS are optional.
type Dependencies struct {
	Config      config.Provider
	Marketplace domain.Marketplace
	Tokens      *auth.TokenParser
	Emitter     *events.Emitter
	Invalidator handlers.Invalidator
	Renderer    rendering.Renderer
	Echo        *echo.Echo

	// StaticFS overrides the static asset source, e.g. for tests.
	StaticFS afero.Fs

	// Closers are closed, in order, after the HTTP server has stopped.
	Closers []io.Closer
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	marketplace domain.Marketplace
	tokens      *auth.TokenParser
	emitter     *events.Emitter
	invalidator handlers.Invalidator
	renderer    rendering.Renderer
	modules     []module.Module
	closers     []io.Closer
}

// New creates a new Server instance with its middleware stack configured.
// Routes are added by RegisterRoutes and InitModules.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Marketplace == nil {
		return nil, errors.New("server: marketplace client is required")
	}
	if deps.Tokens == nil {
		deps.Tokens = auth.NewTokenParser(deps.Config.GetTokenSecret())
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer()
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	} else {
		e.Renderer = rendering.NewUniversalRenderer()
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(session.Middleware(newSessionStore(deps.Config)))

	setupErrorHandling(e)

	staticFS := deps.StaticFS
	if staticFS == nil {
		var err error
		staticFS, err = newStaticFS(deps.Config.GetStaticDir())
		if err != nil {
			return nil, err
		}
	}
	registerStatic(e, staticFS)

	return &Server{
		E:           e,
		Cfg:         deps.Config,
		marketplace: deps.Marketplace,
		tokens:      deps.Tokens,
		emitter:     deps.Emitter,
		invalidator: deps.Invalidator,
		renderer:    deps.Renderer,
		closers:     deps.Closers,
	}, nil
}

// requestLogger logs one line per request through the request-scoped logger.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			appmiddleware.FromContext(c.Request().Context()).LogAttrs(c.Request().Context(), level, "Request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}

// setupErrorHandling installs the HTTP error handler. Errors that are not
// *echo.HTTPError are unexpected and are logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmiddleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			if he.Internal != nil {
				logger.Warn("HTTP error", "status", code, "path", c.Request().URL.Path, "error", he.Internal)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.String(code, message)
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}

// newSessionStore builds the cookie store for the session middleware. Cookies
// are marked Secure when the public base URL is https, e.g. behind a
// TLS-terminating proxy where the request itself arrives over plain HTTP.
func newSessionStore(cfg config.Provider) *sessions.CookieStore {
	store := auth.NewCookieStore(cfg.GetSessionSecret())
	store.Options.Secure = strings.HasPrefix(strings.ToLower(cfg.GetAppBaseURL()), "https://")
	return store
}
