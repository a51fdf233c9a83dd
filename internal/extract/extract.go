// Package extract converts uploaded file bytes into plain text, one extractor
// per supported file kind, and aggregates per-file texts into the single
// document context sent to the model.
package extract

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Kind is the declared type of an uploaded file, derived from its extension.
type Kind string

const (
	KindPDF      Kind = "pdf"
	KindRTF      Kind = "rtf"
	KindNotebook Kind = "notebook"
	KindCode     Kind = "code"
	KindDocx     Kind = "docx"
	KindXlsx     Kind = "xlsx"
	KindPptx     Kind = "pptx"
	KindText     Kind = "text" // best-effort UTF-8 decode, also the fallback
)

var kindByExt = map[string]Kind{
	".pdf":   KindPDF,
	".rtf":   KindRTF,
	".ipynb": KindNotebook,
	".py":    KindCode,
	".java":  KindCode,
	".js":    KindCode,
	".jsx":   KindCode,
	".go":    KindCode,
	".docx":  KindDocx,
	".xlsx":  KindXlsx,
	".pptx":  KindPptx,
	".txt":   KindText,
	".csv":   KindText,
}

// KindFor returns the file kind for a filename. Unknown extensions map to
// KindText, the generic best-effort decoder.
func KindFor(name string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	if k, ok := kindByExt[ext]; ok {
		return k
	}
	return KindText
}

var extractors = map[Kind]func([]byte) (string, error){
	KindPDF:      extractPDF,
	KindRTF:      extractRTF,
	KindNotebook: extractNotebook,
	KindCode:     extractCode,
	KindDocx:     extractDocx,
	KindXlsx:     extractXlsx,
	KindPptx:     extractPptx,
	KindText:     extractText,
}

// Extract converts a file's bytes into plain text. It never fails hard: any
// extraction error degrades to an empty string plus a diagnostic message, so
// one broken file does not abort the rest of its upload batch.
func Extract(data []byte, name string) (text string, diag string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[extract] panic recovered for %s: %v", name, r)
			text = ""
			diag = fmt.Sprintf("processing error (%s): %v", name, r)
		}
	}()

	fn := extractors[KindFor(name)]
	out, err := fn(data)
	if err != nil {
		return "", fmt.Sprintf("processing error (%s): %v", name, err)
	}
	return out, ""
}

// extractCode decodes source files verbatim. Unlike the generic text
// fallback, invalid UTF-8 here is reported rather than swallowed.
func extractCode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(data), nil
}

// extractText is the best-effort decoder for txt, csv and unknown
// extensions. Undecodable content yields empty text without a diagnostic.
func extractText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", nil
	}
	return string(data), nil
}

// Part pairs a filename with its extracted text for aggregation.
type Part struct {
	Name string
	Text string
}

// Aggregate builds the document context: every part with non-empty text
// contributes a delimited block, in upload order. The result replaces any
// previous context wholesale.
func Aggregate(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		if p.Text == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n\n--- %s ---\n%s", p.Name, p.Text))
	}
	return sb.String()
}
