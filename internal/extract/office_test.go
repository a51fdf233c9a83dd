package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractDocx(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`
	data := buildZip(t, map[string]string{"word/document.xml": doc})

	text, diag := Extract(data, "memo.docx")
	assert.Empty(t, diag)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", text)
}

func TestExtractDocxMissingDocument(t *testing.T) {
	data := buildZip(t, map[string]string{"other.xml": "<x/>"})
	text, diag := Extract(data, "memo.docx")
	assert.Empty(t, text)
	assert.Contains(t, diag, "memo.docx")
}

func TestExtractPptxSlideOrder(t *testing.T) {
	slide := func(txt string) string {
		return `<?xml version="1.0"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <a:p><a:r><a:t>` + txt + `</a:t></a:r></a:p>
</p:sld>`
	}
	// Entry order deliberately reversed; output must follow slide numbers.
	data := buildZip(t, map[string]string{
		"ppt/slides/slide2.xml": slide("second slide"),
		"ppt/slides/slide1.xml": slide("first slide"),
	})

	text, diag := Extract(data, "deck.pptx")
	assert.Empty(t, diag)
	assert.Equal(t, "first slide\nsecond slide", text)
}

func TestExtractOfficeNotAZip(t *testing.T) {
	_, diag := Extract([]byte("plain bytes"), "memo.docx")
	assert.Contains(t, diag, "memo.docx")

	_, diag = Extract([]byte("plain bytes"), "deck.pptx")
	assert.Contains(t, diag, "deck.pptx")
}
