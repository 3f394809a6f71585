package script

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitBlocks(t *testing.T) {
	content := "\n\n  first\nblock  \n\n\n\nsecond\n \n\nthird"

	got := splitBlocks(content)
	want := []block{
		{text: "first\nblock", line: 3},
		// a whitespace-only line does not separate blocks
		{text: "second", line: 8},
		{text: "third", line: 11},
	}

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(block{})); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	got := normalize("\ufeffa\r\nb\rc\n")
	if got != "a\nb\nc\n" {
		t.Errorf("expected %q, got %q", "a\nb\nc\n", got)
	}
}
