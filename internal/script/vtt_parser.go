package script

import (
	"regexp"
	"strings"
)

var (
	vttHeaderRegex = regexp.MustCompile(`^WEBVTT(?:[ \t].*)?$`)
	// first line of a block that is not a cue
	vttSkipBlockRegex = regexp.MustCompile(`^(?:NOTE|STYLE|REGION)(?:\s|$)`)
	// header metadata such as "Kind: captions"
	vttMetadataRegex = regexp.MustCompile(`^[A-Za-z-]+:\s`)
	vttTimecodeRegex  = regexp.MustCompile(
		`((?:\d{2}:)?\d{2}:\d{2}\.\d{3})[ \t]+-->[ \t]+((?:\d{2}:)?\d{2}:\d{2}\.\d{3})`,
	)
)

// ParseVTT parses WebVTT content. Content without a WEBVTT header yields no
// lines and a single warning instead of an error.
func ParseVTT(content string, episodeID string) ParseOutcome {
	outcome := newOutcome()

	header, rest, _ := strings.Cut(normalize(content), "\n")
	if !vttHeaderRegex.MatchString(strings.TrimSpace(header)) {
		outcome.warn(newWarning(
			WarningMissingHeader, 1, header,
			"skipping file because it does not start with WEBVTT",
		))
		return outcome
	}

	for n, b := range splitBlocks(rest) {
		blockNum := n + 1
		b.line++ // rest starts on line 2
		if vttSkipBlockRegex.MatchString(b.text) {
			continue
		}
		lines := b.lines()

		timecodeIdx := -1
		for i, line := range lines {
			if vttTimecodeRegex.MatchString(line) {
				timecodeIdx = i
				break
			}
		}
		if timecodeIdx == -1 {
			if n == 0 && b.line == 2 && isVTTMetadata(lines) {
				continue
			}
			outcome.warn(newWarning(
				WarningMalformedBlock, b.line, b.text,
				"skipping malformed VTT block %d (line %d): timecode line not found",
				blockNum, b.line,
			))
			continue
		}

		textLines := nonBlank(lines[timecodeIdx+1:])
		if len(textLines) == 0 {
			outcome.warn(newWarning(
				WarningMalformedBlock, b.line, b.text,
				"skipping malformed VTT block %d (line %d): no text found after timecode",
				blockNum, b.line,
			))
			continue
		}

		m := vttTimecodeRegex.FindStringSubmatch(lines[timecodeIdx])
		start, ok := VTTTimeToMs(m[1])
		var end int64
		if ok {
			end, ok = VTTTimeToMs(m[2])
		}
		if !ok {
			outcome.warn(newWarning(
				WarningInvalidTimecode, b.line+timecodeIdx, lines[timecodeIdx],
				"skipping VTT block %d (line %d): invalid timecode format",
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

func isVTTMetadata(lines []string) bool {
	for _, line := range lines {
		if strings.Contains(line, "-->") || !vttMetadataRegex.MatchString(line) {
			return false
		}
	}
	return true
}
