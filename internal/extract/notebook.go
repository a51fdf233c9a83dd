package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

type notebook struct {
	Cells []notebookCell `json:"cells"`
}

type notebookCell struct {
	CellType string          `json:"cell_type"`
	Source   json.RawMessage `json:"source"`
}

// extractNotebook renders an ipynb document cell by cell: code cells become
// fenced code blocks, markdown cells pass through verbatim, anything else is
// skipped. Cell outputs are separated by blank lines.
func extractNotebook(data []byte) (string, error) {
	var nb notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return "", fmt.Errorf("parse notebook: %w", err)
	}

	var blocks []string
	for _, cell := range nb.Cells {
		src := cellSource(cell.Source)
		switch cell.CellType {
		case "code":
			blocks = append(blocks, "```python\n"+src+"\n```")
		case "markdown":
			blocks = append(blocks, src)
		}
	}
	return strings.Join(blocks, "\n\n"), nil
}

// cellSource handles both source encodings nbformat allows: a list of lines
// (each usually newline-terminated) or a single string.
func cellSource(raw json.RawMessage) string {
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		joined := strings.Join(lines, "")
		return strings.TrimRight(joined, "\n")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimRight(s, "\n")
	}
	return ""
}
