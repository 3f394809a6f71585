package script

import (
	"fmt"
	"strings"
)

// ExtractText flattens content to newline-joined text, e.g. as input for
// language detection. Timestamps and per-record warnings are discarded.
func ExtractText(content string, format Format, cfg *ColumnConfig) (string, error) {
	switch format {
	case FormatTXT:
		return content, nil
	case FormatSRT, FormatVTT, FormatSSWT:
		outcome, err := Parse(content, format, "", nil)
		if err != nil {
			return "", err
		}
		return strings.Join(outcome.Texts(), "\n"), nil
	case FormatTSV:
		if cfg == nil {
			return "", ErrMissingColumnConfig
		}
		return ExtractTSVText(content, cfg.TextColumnIndex)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ExtractFileText resolves ext and extracts the plain text of content.
func ExtractFileText(content string, ext string, cfg *ColumnConfig) (string, error) {
	format, err := ParseFormat(ext)
	if err != nil {
		return "", err
	}
	return ExtractText(content, format, cfg)
}

// ExtractTSVText returns the trimmed, non-empty cells of the text column.
// Unlike ParseTSV, a line that is too short fails the whole call.
func ExtractTSVText(content string, textColumnIndex int) (string, error) {
	if textColumnIndex < 0 {
		return "", fmt.Errorf(
			"%w: text column index must be 0 or greater, got %d",
			ErrInvalidColumnConfig,
			textColumnIndex,
		)
	}

	lines := strings.Split(normalize(content), "\n")
	var texts []string
	for i, raw := range lines[1:] {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		columns := strings.Split(raw, tsvDelimiter)
		if len(columns) <= textColumnIndex {
			return "", fmt.Errorf(
				"line %d: %w for text column index %d",
				i+2,
				ErrNotEnoughColumns,
				textColumnIndex,
			)
		}

		if text := strings.TrimSpace(columns[textColumnIndex]); text != "" {
			texts = append(texts, text)
		}
	}

	return strings.Join(texts, "\n"), nil
}
