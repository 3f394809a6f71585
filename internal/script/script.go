package script

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedFormat   = errors.New("unsupported script file type")
	ErrMissingColumnConfig = errors.New("column config is required for TSV script files")
	ErrInvalidColumnConfig = errors.New("invalid column config")
	ErrNotEnoughColumns    = errors.New("not enough columns")
)

// represents single timed transcript entry
type Line struct {
	EpisodeID   string `json:"episodeId"`
	StartTimeMs int64  `json:"startTimeMs"`
	// nil when the source gives no usable end time
	EndTimeMs *int64 `json:"endTimeMs"`
	Text      string `json:"text"`
}

// result of a single structural parse
type ParseOutcome struct {
	Lines    []Line    `json:"lines"`
	Warnings []Warning `json:"warnings"`
}

func newOutcome() ParseOutcome {
	return ParseOutcome{
		Lines:    []Line{},
		Warnings: []Warning{},
	}
}

func (o *ParseOutcome) add(line Line) {
	o.Lines = append(o.Lines, line)
}

func (o *ParseOutcome) warn(w Warning) {
	o.Warnings = append(o.Warnings, w)
}

// Texts returns the text of every parsed line in source order.
func (o ParseOutcome) Texts() []string {
	texts := make([]string, len(o.Lines))
	for i, line := range o.Lines {
		texts[i] = line.Text
	}
	return texts
}

// column positions for tabular scripts, chosen by the caller
type ColumnConfig struct {
	StartTimeColumnIndex int  `json:"startTimeColumnIndex" yaml:"start_time_column"`
	TextColumnIndex      int  `json:"textColumnIndex" yaml:"text_column"`
	EndTimeColumnIndex   *int `json:"endTimeColumnIndex,omitempty" yaml:"end_time_column,omitempty"`
}

// Validate rejects negative column indices. Distinct indices are the caller's concern.
func (c ColumnConfig) Validate() error {
	if c.StartTimeColumnIndex < 0 {
		return fmt.Errorf(
			"%w: start time column index must be 0 or greater, got %d",
			ErrInvalidColumnConfig,
			c.StartTimeColumnIndex,
		)
	}
	if c.TextColumnIndex < 0 {
		return fmt.Errorf(
			"%w: text column index must be 0 or greater, got %d",
			ErrInvalidColumnConfig,
			c.TextColumnIndex,
		)
	}
	if c.EndTimeColumnIndex != nil && *c.EndTimeColumnIndex < 0 {
		return fmt.Errorf(
			"%w: end time column index must be 0 or greater, got %d",
			ErrInvalidColumnConfig,
			*c.EndTimeColumnIndex,
		)
	}
	return nil
}

// represents supported script formats
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatSSWT Format = "sswt"
	FormatTSV  Format = "tsv"
	FormatTXT  Format = "txt"
)

// ParseFormat resolves a file extension such as "srt", ".VTT" or " tsv " to a Format.
func ParseFormat(ext string) (Format, error) {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	switch f := Format(normalized); f {
	case FormatSRT, FormatVTT, FormatSSWT, FormatTSV, FormatTXT:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Structured reports whether the format carries timed records.
func (f Format) Structured() bool {
	switch f {
	case FormatSRT, FormatVTT, FormatSSWT, FormatTSV:
		return true
	default:
		return false
	}
}

func (f Format) String() string {
	return string(f)
}

func msPtr(ms int64) *int64 {
	return &ms
}
