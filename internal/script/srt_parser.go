package script

import (
	"regexp"
	"strings"
)

var (
	srtTimecodeLocator = regexp.MustCompile(
		`\d{2}:\d{2}:\d{2},\d{3}\s-->\s\d{2}:\d{2}:\d{2},\d{3}`,
	)
	srtTimecodeRegex = regexp.MustCompile(
		`(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})`,
	)
)

// ParseSRT parses SubRip content. Blocks without a usable timecode line or
// without text are skipped with a warning; parsing always continues.
func ParseSRT(content string, episodeID string) ParseOutcome {
	outcome := newOutcome()

	for n, b := range splitBlocks(normalize(content)) {
		blockNum := n + 1
		lines := b.lines()

		timecodeIdx := -1
		for i, line := range lines {
			if srtTimecodeLocator.MatchString(line) {
				timecodeIdx = i
				break
			}
		}
		if timecodeIdx == -1 {
			outcome.warn(newWarning(
				WarningMalformedBlock, b.line, b.text,
				"skipping malformed SRT block %d (line %d): timecode line not found",
				blockNum, b.line,
			))
			continue
		}

		textLines := nonBlank(lines[timecodeIdx+1:])
		if len(textLines) == 0 {
			outcome.warn(newWarning(
				WarningMalformedBlock, b.line, b.text,
				"skipping malformed SRT block %d (line %d): no text following timecode",
				blockNum, b.line,
			))
			continue
		}

		m := srtTimecodeRegex.FindStringSubmatch(lines[timecodeIdx])
		var start, end int64
		ok := m != nil
		if ok {
			start, ok = SRTTimeToMs(m[1])
		}
		if ok {
			end, ok = SRTTimeToMs(m[2])
		}
		if !ok {
			outcome.warn(newWarning(
				WarningInvalidTimecode, b.line+timecodeIdx, lines[timecodeIdx],
				"skipping SRT block %d (line %d): invalid timecode format",
				blockNum, b.line+timecodeIdx,
			))
			continue
		}

		outcome.add(Line{
			EpisodeID:   episodeID,
			StartTimeMs: start,
			EndTimeMs:   msPtr(end),
			Text:        strings.Join(textLines, "\n"),
		})
	}

	return outcome
}
