package script

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func warningKinds(ws []Warning) []WarningKind {
	var kinds []WarningKind
	for _, w := range ws {
		kinds = append(kinds, w.Kind)
	}
	return kinds
}

func TestParseSRT(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLines []Line
		wantKinds []WarningKind
	}{
		{
			name:    "two blocks",
			content: "1\n00:00:01,000 --> 00:00:03,000\nHello, world.\n\n2\n00:00:04,000 --> 00:00:06,000\nThis is a test.\n",
			wantLines: []Line{
				{EpisodeID: "ep-1", StartTimeMs: 1000, EndTimeMs: msPtr(3000), Text: "Hello, world."},
				{EpisodeID: "ep-1", StartTimeMs: 4000, EndTimeMs: msPtr(6000), Text: "This is a test."},
			},
		},
		{
			name:    "multi-line text",
			content: "1\n00:00:01,000 --> 00:00:02,000\nLine one\n   Line two  \n",
			wantLines: []Line{
				{EpisodeID: "ep-1", StartTimeMs: 1000, EndTimeMs: msPtr(2000), Text: "Line one\nLine two"},
			},
		},
		{
			name:    "no sequence number",
			content: "00:01:00,250 --> 00:01:02,750\nNo index",
			wantLines: []Line{
				{EpisodeID: "ep-1", StartTimeMs: 60250, EndTimeMs: msPtr(62750), Text: "No index"},
			},
		},
		{
			name:      "empty",
			content:   "",
			wantLines: []Line{},
		},
		{
			name:      "only whitespace",
			content:   "  \n\n \t \n",
			wantLines: []Line{},
		},
		{
			name:      "timecode without text",
			content:   "1\n00:00:01,000 --> 00:00:02,000\n",
			wantLines: []Line{},
			wantKinds: []WarningKind{WarningMalformedBlock},
		},
		{
			name:      "tab separated timecode",
			content:   "1\n00:00:01,000\t-->\t00:00:02,000\nText",
			wantLines: []Line{},
			wantKinds: []WarningKind{WarningInvalidTimecode},
		},
		{
			name:      "end before start passes through",
			content:   "1\n00:00:05,000 --> 00:00:01,000\nBackwards",
			wantLines: []Line{{EpisodeID: "ep-1", StartTimeMs: 5000, EndTimeMs: msPtr(1000), Text: "Backwards"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSRT(tt.content, "ep-1")
			if diff := cmp.Diff(tt.wantLines, got.Lines); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(
				tt.wantKinds,
				warningKinds(got.Warnings),
				cmpopts.EquateEmpty(),
			); diff != "" {
				t.Errorf("warnings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSRTSkipsMalformedBlock(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:02,000
First

2
not a timecode
Broken

3
00:00:05,000 --> 00:00:06,000
Last
`
	got := ParseSRT(content, "ep")

	if len(got.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got.Lines))
	}
	if got.Lines[0].Text != "First" || got.Lines[1].Text != "Last" {
		t.Errorf("unexpected texts: %q", got.Texts())
	}
	if len(got.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(got.Warnings), got.Warnings)
	}
	w := got.Warnings[0]
	if !strings.Contains(w.Message, "malformed") {
		t.Errorf("expected 'malformed' in warning, got %q", w.Message)
	}
	if w.Line != 5 {
		t.Errorf("expected warning on line 5, got %d", w.Line)
	}
	if !strings.Contains(w.Snippet, "not a timecode") {
		t.Errorf("expected snippet to name the block, got %q", w.Snippet)
	}
	if !w.Skipped() {
		t.Error("malformed block should count as skipped")
	}
}

func TestParseSRTLineEndings(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:03,000\nHello, world.\n\n2\n00:00:04,000 --> 00:00:06,000\nThis is a test.\n"
	want := ParseSRT(content, "ep")

	variants := map[string]string{
		"crlf": strings.ReplaceAll(content, "\n", "\r\n"),
		"cr":   strings.ReplaceAll(content, "\n", "\r"),
		"bom":  "\ufeff" + content,
	}
	for name, variant := range variants {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(want, ParseSRT(variant, "ep")); diff != "" {
				t.Errorf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSRTIdempotent(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nA\n\nbroken\n\n2\n00:00:03,000 --> 00:00:04,000\nB"
	first := ParseSRT(content, "ep")
	second := ParseSRT(content, "ep")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second parse differs (-first +second):\n%s", diff)
	}
}

func TestParseSRTWarningsAccountForSkippedBlocks(t *testing.T) {
	content := strings.Join([]string{
		"1\n00:00:01,000 --> 00:00:02,000\none",
		"2\nno timecode here",
		"3\n00:00:03,000 --> 00:00:04,000",
		"4\n00:00:05,000  -->  00:00:06,000\nwide arrow",
		"5\n00:00:07,000 --> 00:00:08,000\ntwo",
	}, "\n\n")
	got := ParseSRT(content, "ep")

	skipped := 0
	for _, w := range got.Warnings {
		if w.Skipped() {
			skipped++
		}
	}
	if len(got.Lines)+skipped != 5 {
		t.Errorf(
			"expected lines + skipped warnings to cover 5 blocks, got %d + %d",
			len(got.Lines), skipped,
		)
	}
	if skipped != 3 {
		t.Errorf("expected 3 skipped blocks, got %d: %v", skipped, got.Warnings)
	}
}
