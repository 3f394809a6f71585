package script

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractFileText(t *testing.T) {
	tsvCfg := &ColumnConfig{StartTimeColumnIndex: 0, TextColumnIndex: 1}

	tests := []struct {
		name    string
		ext     string
		content string
		cfg     *ColumnConfig
		want    string
	}{
		{
			name:    "txt is returned as is",
			ext:     "txt",
			content: "This is a plain text file.\nWith multiple lines.\n",
			want:    "This is a plain text file.\nWith multiple lines.\n",
		},
		{
			name:    "srt",
			ext:     "srt",
			content: "1\n00:00:01,000 --> 00:00:04,000\nHello world\n\n2\n00:00:05,000 --> 00:00:08,000\nThis is a test",
			want:    "Hello world\nThis is a test",
		},
		{
			name:    "vtt",
			ext:     "vtt",
			content: "WEBVTT\n\n00:00:01.000 --> 00:00:04.000\nHello world\n\n00:00:05.000 --> 00:00:08.000\nThis is a test",
			want:    "Hello world\nThis is a test",
		},
		{
			name:    "vtt without header is silently empty",
			ext:     "vtt",
			content: "00:00:01.000 --> 00:00:04.000\nHello world",
			want:    "",
		},
		{
			name:    "sswt",
			ext:     "sswt",
			content: "[00:00:01.000 -> 00:00:04.000] Hello world\nnoise\n[00:00:05.000 -> 00:00:08.000] This is a test",
			want:    "Hello world\nThis is a test",
		},
		{
			name:    "tsv",
			ext:     "tsv",
			content: "start_time\ttext\n00:00:01.000\tHello world\n00:00:05.000\tThis is a test",
			cfg:     tsvCfg,
			want:    "Hello world\nThis is a test",
		},
		{
			name:    "tsv with blank lines and padding",
			ext:     "tsv",
			content: "start_time\ttext\n00:00:01.000\t  Hello world  \n00:00:05.000\tThis is a test\n\t\n00:00:10.000\tFinal line",
			cfg:     tsvCfg,
			want:    "Hello world\nThis is a test\nFinal line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileText(tt.content, tt.ext, tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractFileTextErrors(t *testing.T) {
	if _, err := ExtractFileText("Some content", "unsupported", nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := ExtractFileText("start\ttext\n1\thi", "tsv", nil); !errors.Is(err, ErrMissingColumnConfig) {
		t.Errorf("expected ErrMissingColumnConfig, got %v", err)
	}
}

func TestExtractTSVText(t *testing.T) {
	content := "start\ttext\n1\tfirst\n2\t   \n3\tthird\n"
	got, err := ExtractTSVText(content, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first\nthird" {
		t.Errorf("expected empty cells to be skipped, got %q", got)
	}
}

func TestExtractTSVTextNegativeIndex(t *testing.T) {
	_, err := ExtractTSVText("start\ttext\n1\thello", -1)
	if !errors.Is(err, ErrInvalidColumnConfig) {
		t.Errorf("expected ErrInvalidColumnConfig, got %v", err)
	}
}

func TestExtractTSVTextFailsOnShortLine(t *testing.T) {
	content := "start\ttext\n1\tok\nonly-one-column\n3\tnever reached"
	_, err := ExtractTSVText(content, 1)
	if !errors.Is(err, ErrNotEnoughColumns) {
		t.Fatalf("expected ErrNotEnoughColumns, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected error to name line 3, got %q", err.Error())
	}

	// the structural parser only skips the same line
	outcome := ParseTSV(content, "ep", ColumnConfig{StartTimeColumnIndex: 0, TextColumnIndex: 1})
	if len(outcome.Lines) != 2 || len(outcome.Warnings) != 1 {
		t.Errorf(
			"expected 2 lines and 1 warning from ParseTSV, got %d and %d",
			len(outcome.Lines), len(outcome.Warnings),
		)
	}
}
