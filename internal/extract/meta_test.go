package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIcon(t *testing.T) {
	assert.Equal(t, "📕", Icon("report.pdf"))
	assert.Equal(t, "🐍", Icon("app.py"))
	assert.Equal(t, "📁", Icon("unknown.bin"))
	assert.Equal(t, "📁", Icon("noext"))
}

func TestDescribe(t *testing.T) {
	data := []byte(strings.Repeat("x", 2048))
	meta, diag := Describe("notes.txt", data, "three little words")

	assert.Empty(t, diag)
	assert.Equal(t, "notes.txt", meta.Name)
	assert.Equal(t, "TXT", meta.Kind)
	assert.Equal(t, "📝", meta.Icon)
	assert.Equal(t, 3, meta.WordCount)
	assert.Equal(t, int64(2), meta.SizeKB)
	assert.Zero(t, meta.Pages)
}

func TestDescribeCorruptPDF(t *testing.T) {
	meta, diag := Describe("broken.pdf", []byte("not a pdf"), "")

	assert.Contains(t, diag, "broken.pdf")
	assert.Equal(t, "PDF", meta.Kind)
	assert.Zero(t, meta.Pages)
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "DOCX", kindLabel("a.docx"))
	assert.Equal(t, "FILE", kindLabel("noext"))
}
