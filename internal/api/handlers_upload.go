// handlers_upload.go - Document batch upload handlers
package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/omnifile/backend/internal/config"
	"github.com/omnifile/backend/internal/extract"
	"github.com/omnifile/backend/internal/models"
	"github.com/omnifile/backend/internal/session"
)

// UploadHandlerImpl implements the UploadHandler interface
type UploadHandlerImpl struct {
	cfg        *config.AppConfig
	sessionMgr *session.Manager
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(cfg *config.AppConfig, sessionMgr *session.Manager) UploadHandler {
	return &UploadHandlerImpl{cfg: cfg, sessionMgr: sessionMgr}
}

// uploadResponse reports the installed batch plus anything that went wrong
// with individual files. A file-level failure never fails the batch.
type uploadResponse struct {
	Files       []models.FileMeta `json:"files"`
	WordCount   int               `json:"wordCount"`
	Diagnostics []string          `json:"diagnostics,omitempty"`
}

// HandleUploadFiles accepts a multipart batch under the "files" field. The
// batch replaces the session's previous files and document context wholesale;
// chat history is preserved.
func (h *UploadHandlerImpl) HandleUploadFiles(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.sessionMgr.Info(id); !ok {
		return NewNotFoundError("session", id)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return NewBadRequestError("invalid multipart form", err)
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return NewValidationError("files")
	}
	if len(headers) > h.cfg.Upload.MaxFiles {
		return NewBadRequestError(
			fmt.Sprintf("too many files: %d (limit %d)", len(headers), h.cfg.Upload.MaxFiles), nil)
	}

	var (
		metas       []models.FileMeta
		parts       []extract.Part
		diagnostics []string
	)
	for _, fh := range headers {
		if !h.cfg.ExtensionAllowed(fh.Filename) {
			diagnostics = append(diagnostics,
				fmt.Sprintf("unsupported file type: %s", fh.Filename))
			continue
		}

		data, err := readMultipartFile(fh)
		if err != nil {
			diagnostics = append(diagnostics,
				fmt.Sprintf("read error (%s): %v", fh.Filename, err))
			continue
		}

		text, diag := extract.Extract(data, fh.Filename)
		if diag != "" {
			diagnostics = append(diagnostics, diag)
		}

		meta, metaDiag := extract.Describe(fh.Filename, data, text)
		if metaDiag != "" {
			diagnostics = append(diagnostics, metaDiag)
		}
		metas = append(metas, meta)
		parts = append(parts, extract.Part{Name: fh.Filename, Text: text})
	}

	docContext := extract.Aggregate(parts)
	if !h.sessionMgr.ReplaceFiles(id, metas, docContext) {
		return NewNotFoundError("session", id)
	}

	words := 0
	for _, m := range metas {
		words += m.WordCount
	}
	return c.JSON(http.StatusOK, uploadResponse{
		Files:       metas,
		WordCount:   words,
		Diagnostics: diagnostics,
	})
}

// HandleListFiles returns the metadata of the current batch
func (h *UploadHandlerImpl) HandleListFiles(c echo.Context) error {
	id := c.Param("id")
	files, ok := h.sessionMgr.Files(id)
	if !ok {
		return NewNotFoundError("session", id)
	}
	if files == nil {
		files = []models.FileMeta{}
	}
	return c.JSON(http.StatusOK, files)
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
