package viz

import (
	"bytes"
	"encoding/csv"
	"strings"
)

const maxTableRows = 50

// renderTable extracts tabular rows from the answer and re-encodes them as
// CSV bytes for the client to render. Pipe-delimited (markdown) rows are
// preferred; lines with two or more commas are used otherwise. Fewer than
// two rows yield nothing.
func renderTable(answer string) ([]byte, error) {
	rows := parsePipeRows(answer)
	if len(rows) < 2 {
		rows = parseCommaRows(answer)
	}
	if len(rows) < 2 {
		return nil, nil
	}
	if len(rows) > maxTableRows {
		rows = rows[:maxTableRows]
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parsePipeRows(answer string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "|") {
			continue
		}
		if isSeparatorRow(line) {
			continue
		}
		cells := splitCells(line, "|")
		if len(cells) >= 2 {
			rows = append(rows, cells)
		}
	}
	return rows
}

func parseCommaRows(answer string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		if strings.Count(line, ",") < 2 {
			continue
		}
		rows = append(rows, splitCells(line, ","))
	}
	return rows
}

// isSeparatorRow reports markdown header separators like |---|:---:|.
func isSeparatorRow(line string) bool {
	trimmed := strings.Trim(line, "| ")
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '-', ':', '|', ' ':
		default:
			return false
		}
	}
	return true
}

func splitCells(line, sep string) []string {
	parts := strings.Split(strings.Trim(line, sep), sep)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}
