// routes.go - Route registration helpers
// This file provides a clean way to register all API routes
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/omnifile/backend/internal/config"
	"github.com/omnifile/backend/internal/session"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Config     *config.AppConfig
	SessionMgr *session.Manager
	Answerer   Answerer // nil when the model service is unavailable
	Version    string
}

// Handlers holds all handler instances
type Handlers struct {
	Health  HealthHandler
	Session SessionHandler
	Upload  UploadHandler
	Ask     AskHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(deps.Version, deps.SessionMgr, deps.Answerer != nil),
		Session: NewSessionHandler(deps.SessionMgr),
		Upload:  NewUploadHandler(deps.Config, deps.SessionMgr),
		Ask:     NewAskHandler(deps.SessionMgr, deps.Answerer),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	// Health check
	e.GET("/api/health", handlers.Health.HandleHealth)

	// Session lifecycle routes
	sessions := e.Group("/api/sessions")
	sessions.POST("", handlers.Session.HandleCreateSession)
	sessions.GET("/:id", handlers.Session.HandleGetSession)
	sessions.POST("/:id/reset", handlers.Session.HandleResetSession)
	sessions.DELETE("/:id", handlers.Session.HandleDeleteSession)

	// Document upload routes
	sessions.POST("/:id/files", handlers.Upload.HandleUploadFiles)
	sessions.GET("/:id/files", handlers.Upload.HandleListFiles)

	// Question answering and history routes
	sessions.POST("/:id/ask", handlers.Ask.HandleAsk)
	sessions.GET("/:id/history", handlers.Ask.HandleHistory)
	sessions.GET("/:id/history/msgpack", handlers.Ask.HandleHistoryMsgpack)
	sessions.GET("/:id/history/:index/answer.txt", handlers.Ask.HandleDownloadAnswer)
	sessions.GET("/:id/history/:index/chart.png", handlers.Ask.HandleChartImage)
}
