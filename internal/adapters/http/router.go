package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reignofvision/agency-api/internal/adapters/http/handlers"
	"github.com/reignofvision/agency-api/internal/adapters/http/middleware"
	"github.com/reignofvision/agency-api/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName is used for telemetry instrumentation.
	ServiceName string

	// HealthHandler handles the operational endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// ContentHandler serves the CMS-backed collections. Optional.
	ContentHandler *handlers.ContentHandler

	// FormHandler serves the form submission endpoints. Optional.
	FormHandler *handlers.FormHandler

	// SiteHandler serves site-wide settings. Optional.
	SiteHandler *handlers.SiteHandler

	// Timeout is the default request timeout for /api routes.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline on /api routes
//
// Route groups:
//   - /-/ (internal): operational endpoints, no timeout for probes
//   - /api/ (public): site endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.ServiceName),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.ContentHandler != nil {
		cfg.ContentHandler.RegisterContentRoutes(api)
	}

	if cfg.FormHandler != nil {
		cfg.FormHandler.RegisterFormRoutes(api)
	}

	if cfg.SiteHandler != nil {
		cfg.SiteHandler.RegisterSiteRoutes(api)
	}
}
