// handlers_health.go - Health check handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/omnifile/backend/internal/session"
)

// HealthHandlerImpl implements the HealthHandler interface
type HealthHandlerImpl struct {
	version    string
	sessionMgr *session.Manager
	modelReady bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, sessionMgr *session.Manager, modelReady bool) HealthHandler {
	return &HealthHandlerImpl{
		version:    version,
		sessionMgr: sessionMgr,
		modelReady: modelReady,
	}
}

// HandleHealth returns server health status
func (h *HealthHandlerImpl) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"version":    h.version,
		"sessions":   h.sessionMgr.Len(),
		"modelReady": h.modelReady,
	})
}
