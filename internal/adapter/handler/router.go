package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	httpmw "github.com/lifelogkit/lifelog-exporter/internal/infrastructure/http/middleware"
	"github.com/lifelogkit/lifelog-exporter/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	exportHandler *ExportHandler
	apiKeyMW      *httpmw.APIKeyMiddleware
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, exportHandler *ExportHandler, apiKeyMW *httpmw.APIKeyMiddleware) *Router {
	return &Router{
		cfg:           cfg,
		exportHandler: exportHandler,
		apiKeyMW:      apiKeyMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupExportRoutes(v1)
}

// setupExportRoutes configures export routes. All of them need an upstream
// API key.
func (rt *Router) setupExportRoutes(g *echo.Group) {
	exports := g.Group("/exports", rt.apiKeyMW.Require)

	exports.POST("/optimize", rt.exportHandler.Optimize)
	exports.POST("/consolidated", rt.exportHandler.Consolidated)
	exports.POST("/batch", rt.exportHandler.Batch)
	exports.GET("/:date/download", rt.exportHandler.Download)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
