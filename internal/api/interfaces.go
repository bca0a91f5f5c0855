// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"github.com/labstack/echo/v4"
)

// DocumentHandler handles document conversion operations
type DocumentHandler interface {
	HandleSupportedFormats(c echo.Context) error
	HandleConvertDocument(c echo.Context) error
	HandleValidateDocument(c echo.Context) error
}

// HealthHandler handles health and operational status checks
type HealthHandler interface {
	HandleHealth(c echo.Context) error
	HandleOperationalStatus(c echo.Context) error
}
