package script

import (
	"strings"
)

// bounded header and sample rows of tabular content
type ScriptPreview struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// settings for Preview
type PreviewOptions struct {
	HasHeader bool
	RowCount  int    // data rows to include
	Delimiter string // defaults to tab
}

func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		HasHeader: true,
		RowCount:  5,
		Delimiter: tsvDelimiter,
	}
}

// Preview returns the header and the first rows of content so a caller can
// pick column mappings. Blank lines are ignored. It never fails.
func Preview(content string, opts PreviewOptions) ScriptPreview {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = tsvDelimiter
	}
	rowCount := max(opts.RowCount, 0)

	var lines []string
	for _, line := range strings.Split(normalize(content), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	preview := ScriptPreview{Rows: [][]string{}}
	if len(lines) == 0 {
		return preview
	}

	if opts.HasHeader {
		preview.Headers = splitCells(lines[0], delimiter)
		lines = lines[1:]
	}
	if len(lines) > rowCount {
		lines = lines[:rowCount]
	}
	for _, line := range lines {
		preview.Rows = append(preview.Rows, splitCells(line, delimiter))
	}

	return preview
}

func splitCells(line, delimiter string) []string {
	cells := strings.Split(line, delimiter)
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
