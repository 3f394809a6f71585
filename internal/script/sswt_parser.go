package script

import (
	"regexp"
	"strings"
)

// [HH:MM:SS.mmm -> HH:MM:SS.mmm] text
var sswtLineRegex = regexp.MustCompile(`^\[(\S+) -> (\S+)\]\s*(.*)$`)

// ParseSSWT parses bracket-timestamp content, one entry per line. A line with
// the wrong shape and a line with out-of-range times produce different warnings.
func ParseSSWT(content string, episodeID string) ParseOutcome {
	outcome := newOutcome()

	for i, raw := range strings.Split(normalize(content), "\n") {
		lineNum := i + 1
		if strings.TrimSpace(raw) == "" {
			continue
		}

		m := sswtLineRegex.FindStringSubmatch(raw)
		if m == nil {
			outcome.warn(newWarning(
				WarningInvalidFormat, lineNum, raw,
				"skipping line %d: invalid format", lineNum,
			))
			continue
		}

		start, ok := BracketTimeToMs(m[1])
		var end int64
		if ok {
			end, ok = BracketTimeToMs(m[2])
		}
		if !ok {
			outcome.warn(newWarning(
				WarningInvalidTime, lineNum, raw,
				"skipping line %d: invalid time format", lineNum,
			))
			continue
		}

		text := strings.TrimSpace(m[3])
		if text == "" {
			outcome.warn(newWarning(
				WarningEmptyText, lineNum, raw,
				"skipping line %d: text is empty", lineNum,
			))
			continue
		}

		outcome.add(Line{
			EpisodeID:   episodeID,
			StartTimeMs: start,
			EndTimeMs:   msPtr(end),
			Text:        text,
		})
	}

	return outcome
}
