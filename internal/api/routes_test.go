// routes_test.go - End-to-end route registration tests
package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/docdrip/backend/internal/config"
	"github.com/docdrip/backend/internal/document"
	"github.com/docdrip/backend/internal/testutil"
)

func newTestServer(t *testing.T, cfg *config.AppConfig) *echo.Echo {
	t.Helper()

	service := document.NewService(document.DefaultRegistry(), testutil.NewMockConverter("# converted"))
	handlers := NewHandlers(&Dependencies{
		Service: service,
		Config:  cfg,
		Version: "test",
	})

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	RegisterRoutes(e, handlers, cfg)
	return e
}

func TestRoutesWithAuthEnabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Security.RequireAuth = true
	cfg.Security.APIKey = "test-key"
	e := newTestServer(t, cfg)

	// Health and version probe stay open
	for _, path := range []string{"/health", "/v1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}

	// Document routes reject requests without the key
	req := httptest.NewRequest(http.MethodGet, "/v1/documents/supported-formats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", rec.Code)
	}

	// And accept them with it
	req = httptest.NewRequest(http.MethodGet, "/v1/documents/supported-formats", nil)
	req.Header.Set(HeaderAPIKey, "test-key")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with key, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"max_file_size_mb":10`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoutesWithAuthDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Security.RequireAuth = false
	e := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/supported-formats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
