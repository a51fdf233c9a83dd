// interfaces.go - Handler and collaborator contracts
package api

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Answerer is the outbound model call: question plus document context in,
// answer text and an optional diagnostic out. Implementations never return
// an error; failures degrade to an apology answer per the pipeline's error
// policy.
type Answerer interface {
	Answer(ctx context.Context, question, docContext string) (answer string, diag string)
}

// HealthHandler serves liveness checks
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// SessionHandler manages session lifecycle
type SessionHandler interface {
	HandleCreateSession(c echo.Context) error
	HandleGetSession(c echo.Context) error
	HandleResetSession(c echo.Context) error
	HandleDeleteSession(c echo.Context) error
}

// UploadHandler ingests document batches
type UploadHandler interface {
	HandleUploadFiles(c echo.Context) error
	HandleListFiles(c echo.Context) error
}

// AskHandler runs questions and serves the resulting history
type AskHandler interface {
	HandleAsk(c echo.Context) error
	HandleHistory(c echo.Context) error
	HandleHistoryMsgpack(c echo.Context) error
	HandleDownloadAnswer(c echo.Context) error
	HandleChartImage(c echo.Context) error
}
