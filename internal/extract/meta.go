package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/omnifile/backend/internal/models"
)

var icons = map[string]string{
	".pdf":   "📕",
	".docx":  "📘",
	".xlsx":  "📊",
	".txt":   "📝",
	".pptx":  "📽️",
	".csv":   "📓",
	".rtf":   "📄",
	".ipynb": "📔",
	".py":    "🐍",
	".java":  "☕",
	".js":    "📜",
	".jsx":   "⚛️",
	".go":    "🐹",
}

// Icon returns the display icon for a filename.
func Icon(name string) string {
	if icon, ok := icons[strings.ToLower(filepath.Ext(name))]; ok {
		return icon
	}
	return "📁"
}

// Describe builds the metadata view of one uploaded file. The page count
// re-parses PDF bytes; a failure there is reported as a diagnostic and the
// count stays zero rather than aborting the batch.
func Describe(name string, data []byte, text string) (models.FileMeta, string) {
	meta := models.FileMeta{
		Name:      name,
		Kind:      kindLabel(name),
		Icon:      Icon(name),
		WordCount: len(strings.Fields(text)),
		SizeKB:    int64(len(data)) / 1024,
	}

	var diag string
	if KindFor(name) == KindPDF {
		pages, err := PageCount(data)
		if err != nil {
			diag = fmt.Sprintf("PDF error (%s): %v", name, err)
		} else {
			meta.Pages = pages
		}
	}
	return meta, diag
}

func kindLabel(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "FILE"
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}
