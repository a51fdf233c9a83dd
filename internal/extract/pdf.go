package extract

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDF pulls text out of every page and joins pages with newlines.
// Pages without extractable text contribute an empty line, not an error.
func extractPDF(data []byte) (string, error) {
	ctx, err := readPDF(data)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}

	pages := make([]string, 0, ctx.PageCount)
	for nr := 1; nr <= ctx.PageCount; nr++ {
		pages = append(pages, pageText(ctx, nr))
	}
	return strings.Join(pages, "\n"), nil
}

// PageCount re-parses the PDF and returns its page count.
func PageCount(data []byte) (int, error) {
	ctx, err := readPDF(data)
	if err != nil {
		return 0, err
	}
	return ctx.PageCount, nil
}

func readPDF(data []byte) (*model.Context, error) {
	conf := model.NewDefaultConfiguration()
	return api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
}

// pageText extracts the visible text of one page from its content stream.
func pageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	stream, err := io.ReadAll(r)
	if err != nil || len(stream) == 0 {
		return ""
	}
	return textFromContentStream(stream)
}

// pdfLiteralRe matches PDF string literals: (text here)
var pdfLiteralRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromContentStream walks the page's operators and collects the text
// shown by Tj, TJ and ' while turning positioning operators into whitespace.
func textFromContentStream(stream []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(stream, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0:
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return normalizeSpace(sb.String())
}

// decodePDFString resolves the escape sequences allowed in PDF literals,
// including octal byte escapes like \040.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(c)
		default:
			if c >= '0' && c <= '7' {
				val := int(c - '0')
				for d := 0; d < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; d++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}

// normalizeSpace collapses runs of whitespace but keeps line breaks.
func normalizeSpace(s string) string {
	var sb strings.Builder
	var prevSpace, prevNL bool
	for _, r := range s {
		switch {
		case r == '\n':
			if !prevNL && sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			prevNL, prevSpace = true, true
		case r == ' ' || r == '\t' || r == '\r':
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			prevSpace = true
		default:
			sb.WriteRune(r)
			prevSpace, prevNL = false, false
		}
	}
	return strings.TrimSpace(sb.String())
}
