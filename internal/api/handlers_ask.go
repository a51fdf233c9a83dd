// handlers_ask.go - Question answering and chat history handlers
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/omnifile/backend/internal/models"
	"github.com/omnifile/backend/internal/session"
	"github.com/omnifile/backend/internal/viz"
	"github.com/vmihailenco/msgpack/v5"
)

// AskHandlerImpl implements the AskHandler interface
type AskHandlerImpl struct {
	sessionMgr *session.Manager
	answerer   Answerer // nil when no API key was configured
}

// NewAskHandler creates a new ask handler instance
func NewAskHandler(sessionMgr *session.Manager, answerer Answerer) AskHandler {
	return &AskHandlerImpl{sessionMgr: sessionMgr, answerer: answerer}
}

type askRequest struct {
	Question string `json:"question"`
}

// askResponse is the full pipeline result for one question
type askResponse struct {
	Entry       models.ChatEntry `json:"entry"`
	Index       int              `json:"index"` // newest-first position in history
	Diagnostics []string         `json:"diagnostics,omitempty"`
}

// HandleAsk runs the full pipeline: model call, question classification and
// chart rendering. Downstream failures degrade the response instead of
// failing it; only missing inputs are request errors.
func (h *AskHandlerImpl) HandleAsk(c echo.Context) error {
	id := c.Param("id")

	var req askRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.Question == "" {
		return NewValidationError("question")
	}

	docContext, hasFiles, ok := h.sessionMgr.Context(id)
	if !ok {
		return NewNotFoundError("session", id)
	}
	if !hasFiles {
		return NewBadRequestError("no documents uploaded", nil)
	}
	if h.answerer == nil {
		return NewServiceUnavailableError("model service is not configured")
	}

	var diagnostics []string
	answer, diag := h.answerer.Answer(c.Request().Context(), req.Question, docContext)
	if diag != "" {
		diagnostics = append(diagnostics, diag)
	}

	kind := viz.Classify(req.Question)
	image, table, vizDiag := viz.Render(answer, kind)
	if vizDiag != "" {
		diagnostics = append(diagnostics, vizDiag)
	}
	if image == nil && table == nil {
		kind = models.ChartNone
	}

	entry := models.ChatEntry{
		Question:  req.Question,
		Answer:    answer,
		ChartKind: kind,
		Image:     image,
		Table:     table,
		CreatedAt: time.Now(),
	}
	if !h.sessionMgr.AppendEntry(id, entry) {
		return NewNotFoundError("session", id)
	}

	return c.JSON(http.StatusOK, askResponse{
		Entry:       entry,
		Index:       0,
		Diagnostics: diagnostics,
	})
}

// HandleHistory returns the chat history, newest first
func (h *AskHandlerImpl) HandleHistory(c echo.Context) error {
	id := c.Param("id")
	history, ok := h.sessionMgr.History(id)
	if !ok {
		return NewNotFoundError("session", id)
	}
	if history == nil {
		history = []models.ChatEntry{}
	}
	return c.JSON(http.StatusOK, history)
}

// HandleHistoryMsgpack returns the chat history as a msgpack blob. This is
// the compact transfer format for clients that cache history locally.
func (h *AskHandlerImpl) HandleHistoryMsgpack(c echo.Context) error {
	id := c.Param("id")
	history, ok := h.sessionMgr.History(id)
	if !ok {
		return NewNotFoundError("session", id)
	}

	data, err := msgpack.Marshal(history)
	if err != nil {
		return NewInternalError("failed to encode history", err)
	}
	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleDownloadAnswer serves one answer's text as a file attachment
func (h *AskHandlerImpl) HandleDownloadAnswer(c echo.Context) error {
	id := c.Param("id")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return NewValidationError("index")
	}

	entry, ok := h.sessionMgr.Entry(id, index)
	if !ok {
		return NewNotFoundError("history entry", c.Param("index"))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=analysis_%d.txt", index))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(entry.Answer))
}

// HandleChartImage serves the rendered chart for one history entry
func (h *AskHandlerImpl) HandleChartImage(c echo.Context) error {
	id := c.Param("id")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return NewValidationError("index")
	}

	entry, ok := h.sessionMgr.Entry(id, index)
	if !ok {
		return NewNotFoundError("history entry", c.Param("index"))
	}
	if len(entry.Image) == 0 {
		return NewNotFoundError("chart for history entry", c.Param("index"))
	}
	return c.Blob(http.StatusOK, "image/png", entry.Image)
}
