package script

import (
	"fmt"
	"io"
	"strings"
)

// interface for rendering parsed lines as subtitles
type Writer interface {
	Write(w io.Writer, lines []Line) error
}

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: cannot render %s", ErrUnsupportedFormat, format)
	}
}

// Render returns lines rendered in format as a string.
func Render(lines []Line, format Format) (string, error) {
	writer, err := NewWriter(format)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := writer.Write(&sb, lines); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (sw *SRTWriter) Write(w io.Writer, lines []Line) error {
	var sb strings.Builder
	for i, line := range lines {
		// index (1-based)
		fmt.Fprintf(&sb, "%d\n", i+1)
		fmt.Fprintf(&sb, "%s --> %s\n",
			formatSRTTime(line.StartTimeMs),
			formatSRTTime(endOrStart(line)))
		sb.WriteString(line.Text)
		sb.WriteString("\n\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (vw *VTTWriter) Write(w io.Writer, lines []Line) error {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, line := range lines {
		// optional cue identifier
		fmt.Fprintf(&sb, "%d\n", i+1)
		fmt.Fprintf(&sb, "%s --> %s\n",
			formatVTTTime(line.StartTimeMs),
			formatVTTTime(endOrStart(line)))
		sb.WriteString(line.Text)
		sb.WriteString("\n\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// subtitle cues need an end, so an unknown end collapses onto the start
func endOrStart(line Line) int64 {
	if line.EndTimeMs == nil {
		return line.StartTimeMs
	}
	return *line.EndTimeMs
}

func splitMs(ms int64) (hours, minutes, seconds, millis int64) {
	hours = ms / 3_600_000
	minutes = ms / 60_000 % 60
	seconds = ms / 1000 % 60
	millis = ms % 1000
	return
}

func formatSRTTime(ms int64) string {
	h, m, s, milli := splitMs(ms)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, milli)
}

func formatVTTTime(ms int64) string {
	h, m, s, milli := splitMs(ms)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, milli)
}
