// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-echo/internal/handler"
	"github.com/deppfellow/items-echo/internal/lib/codec"
	"github.com/deppfellow/items-echo/internal/middleware"
	"github.com/deppfellow/items-echo/internal/server"
)

// NewRouter builds the echo instance with the global middleware chain, the
// error handler and every route.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Debug = s.Config.Primary.Debug
	router.JSONSerializer = codec.JSONSerializer{}
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// c.RealIP() keys the rate limiter, so forwarding headers are only
	// believed when the service is configured to sit behind a proxy.
	if s.Config.Server.TrustProxyHeaders {
		router.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		router.IPExtractor = echo.ExtractIPDirect()
	}

	router.Use(
		middleware.RequestID(),
		middlewares.Global.CORS(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Secure(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerItemsRoutes(api, h)

	return router
}
