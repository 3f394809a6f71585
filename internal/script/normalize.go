package script

import (
	"regexp"
	"strings"
	"unicode"
)

var blockSeparator = regexp.MustCompile(`\n{2,}`)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// strips a leading BOM and folds \r\n and \r to \n
func normalize(content string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	return lineEndings.Replace(content)
}

// block of text separated from its neighbours by blank lines
type block struct {
	text string
	line int // 1-based line of the first non-space character
}

func (b block) lines() []string {
	lines := strings.Split(b.text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

// splitBlocks splits normalized content on runs of two or more newlines,
// trimming each block and dropping empty ones.
func splitBlocks(content string) []block {
	var blocks []block
	line := 1
	counted := 0

	appendBlock := func(start, end int) {
		raw := content[start:end]
		trimmedLeft := strings.TrimLeftFunc(raw, unicode.IsSpace)
		text := strings.TrimRightFunc(trimmedLeft, unicode.IsSpace)
		if text == "" {
			return
		}
		offset := start + len(raw) - len(trimmedLeft)
		line += strings.Count(content[counted:offset], "\n")
		counted = offset
		blocks = append(blocks, block{text: text, line: line})
	}

	start := 0
	for _, loc := range blockSeparator.FindAllStringIndex(content, -1) {
		appendBlock(start, loc[0])
		start = loc[1]
	}
	appendBlock(start, len(content))

	return blocks
}

func nonBlank(lines []string) []string {
	var out []string
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
