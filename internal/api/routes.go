// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/docdrip/backend/internal/config"
	"github.com/docdrip/backend/internal/document"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Service *document.Service
	Config  *config.AppConfig
	Version string
}

// Handlers holds all handler instances
type Handlers struct {
	Health    HealthHandler
	Documents DocumentHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(deps.Version),
		Documents: NewDocumentHandler(deps.Service),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers, cfg *config.AppConfig) {
	// Health check (unauthenticated)
	e.GET("/health", handlers.Health.HandleHealth)

	v1 := e.Group("/v1")
	v1.GET("", handlers.Health.HandleOperationalStatus)

	// Document routes, gated behind API key auth
	docs := v1.Group("/documents")
	if cfg.Security.RequireAuth {
		docs.Use(APIKeyAuth(cfg.Security.APIKey))
	}
	docs.GET("/supported-formats", handlers.Documents.HandleSupportedFormats)
	docs.POST("", handlers.Documents.HandleConvertDocument)
	docs.POST("/validate", handlers.Documents.HandleValidateDocument)
}
