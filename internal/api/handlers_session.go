// handlers_session.go - Session lifecycle handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/omnifile/backend/internal/session"
)

// SessionHandlerImpl implements the SessionHandler interface
type SessionHandlerImpl struct {
	sessionMgr *session.Manager
}

// NewSessionHandler creates a new session handler instance
func NewSessionHandler(sessionMgr *session.Manager) SessionHandler {
	return &SessionHandlerImpl{sessionMgr: sessionMgr}
}

// HandleCreateSession starts a new empty analysis session
func (h *SessionHandlerImpl) HandleCreateSession(c echo.Context) error {
	info := h.sessionMgr.Create()
	return c.JSON(http.StatusCreated, info)
}

// HandleGetSession returns a session snapshot and keeps it alive
func (h *SessionHandlerImpl) HandleGetSession(c echo.Context) error {
	id := c.Param("id")
	info, ok := h.sessionMgr.Info(id)
	if !ok {
		return NewNotFoundError("session", id)
	}
	h.sessionMgr.Touch(id)
	return c.JSON(http.StatusOK, info)
}

// HandleResetSession clears files, context and history but keeps the ID
func (h *SessionHandlerImpl) HandleResetSession(c echo.Context) error {
	id := c.Param("id")
	if !h.sessionMgr.Reset(id) {
		return NewNotFoundError("session", id)
	}
	info, _ := h.sessionMgr.Info(id)
	return c.JSON(http.StatusOK, info)
}

// HandleDeleteSession removes a session entirely
func (h *SessionHandlerImpl) HandleDeleteSession(c echo.Context) error {
	id := c.Param("id")
	if !h.sessionMgr.Delete(id) {
		return NewNotFoundError("session", id)
	}
	return c.NoContent(http.StatusNoContent)
}
