// middleware.go - API authentication middleware
package api

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HeaderAPIKey is the request header carrying the API key.
const HeaderAPIKey = "X-API-Key"

// APIKeyAuth returns middleware requiring a matching X-API-Key header.
// Fails closed: with no key configured, every request is rejected.
func APIKeyAuth(key string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + HeaderAPIKey,
		Validator: func(provided string, c echo.Context) (bool, error) {
			if key == "" {
				return false, nil
			}
			return subtle.ConstantTimeCompare([]byte(provided), []byte(key)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return NewUnauthorizedError("Unauthorized")
		},
	})
}
