package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// extractDocx reads word/document.xml from the OOXML archive and joins
// paragraph texts with newlines.
func extractDocx(data []byte) (string, error) {
	rc, err := openZipEntry(data, func(name string) bool { return name == "word/document.xml" })
	if err != nil {
		return "", err
	}
	defer rc.Close()

	paras, err := collectParagraphs(rc, "p", "t")
	if err != nil {
		return "", fmt.Errorf("parse document.xml: %w", err)
	}
	return strings.Join(paras, "\n"), nil
}

var slideRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractPptx walks slides in order and concatenates the text runs of every
// shape; shapes without text contribute nothing.
func extractPptx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}

	type slide struct {
		nr   int
		file *zip.File
	}
	var slides []slide
	for _, f := range zr.File {
		m := slideRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		nr, _ := strconv.Atoi(m[1])
		slides = append(slides, slide{nr: nr, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].nr < slides[j].nr })

	var lines []string
	for _, s := range slides {
		rc, err := s.file.Open()
		if err != nil {
			return "", fmt.Errorf("open slide %d: %w", s.nr, err)
		}
		paras, err := collectParagraphs(rc, "p", "t")
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("parse slide %d: %w", s.nr, err)
		}
		lines = append(lines, paras...)
	}
	return strings.Join(lines, "\n"), nil
}

func openZipEntry(data []byte, match func(string) bool) (io.ReadCloser, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	for _, f := range zr.File {
		if match(f.Name) {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("document part not found in archive")
}

// collectParagraphs streams an OOXML part, gathering the character data of
// every <text> element and closing a paragraph on each </para>. Empty
// paragraphs are dropped.
func collectParagraphs(r io.Reader, para, text string) ([]string, error) {
	dec := xml.NewDecoder(r)
	var out []string
	var cur strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == text {
				inText = true
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case text:
				inText = false
			case para:
				if s := strings.TrimSpace(cur.String()); s != "" {
					out = append(out, s)
				}
				cur.Reset()
			}
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		out = append(out, s)
	}
	return out, nil
}
