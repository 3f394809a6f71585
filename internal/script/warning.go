package script

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// WarningKind classifies a per-record diagnostic.
type WarningKind string

const (
	WarningMalformedBlock   WarningKind = "malformed_block"
	WarningInvalidTimecode  WarningKind = "invalid_timecode"
	WarningMissingHeader    WarningKind = "missing_header"
	WarningInvalidFormat    WarningKind = "invalid_format"
	WarningInvalidTime      WarningKind = "invalid_time"
	WarningNotEnoughColumns WarningKind = "not_enough_columns"
	WarningInvalidStartTime WarningKind = "invalid_start_time"
	WarningInvalidEndTime   WarningKind = "invalid_end_time"
	WarningEmptyText        WarningKind = "empty_text"
)

const maxSnippetRunes = 80

// Warning is a non-fatal diagnostic about a skipped or degraded record.
type Warning struct {
	Kind WarningKind `json:"kind"`
	// 1-based physical line in the normalized source, 0 if unknown
	Line    int    `json:"line"`
	Snippet string `json:"snippet"`
	Message string `json:"message"`
}

// Skipped reports whether the record was dropped. An invalid end time only
// degrades the record, everything else drops it.
func (w Warning) Skipped() bool {
	return w.Kind != WarningInvalidEndTime
}

func (w Warning) String() string {
	return w.Message
}

func newWarning(kind WarningKind, line int, raw string, format string, args ...any) Warning {
	snippet := snippetOf(raw)
	msg := fmt.Sprintf(format, args...)
	if snippet != "" {
		msg = fmt.Sprintf("%s: %q", msg, snippet)
	}
	return Warning{
		Kind:    kind,
		Line:    line,
		Snippet: snippet,
		Message: msg,
	}
}

// single line, rune-safe truncation of offending content
func snippetOf(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if utf8.RuneCountInString(s) <= maxSnippetRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxSnippetRunes]) + "..."
}
