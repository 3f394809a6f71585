package script

import (
	"strings"
)

const tsvDelimiter = "\t"

// ParseTSV parses tab-separated content using the caller's column mapping.
// The first line is always a header. A bad line is skipped with a warning,
// except an unparseable end time, which keeps the line with a nil end.
// A blank end cell also yields a nil end, never the start time.
func ParseTSV(content string, episodeID string, cfg ColumnConfig) ParseOutcome {
	outcome := newOutcome()

	lines := strings.Split(normalize(content), "\n")
	for i, raw := range lines[1:] {
		lineNum := i + 2
		if strings.TrimSpace(raw) == "" {
			continue
		}

		columns := strings.Split(raw, tsvDelimiter)
		if !hasColumns(columns, cfg) {
			outcome.warn(newWarning(
				WarningNotEnoughColumns, lineNum, raw,
				"skipping line %d: not enough columns", lineNum,
			))
			continue
		}

		startStr := columns[cfg.StartTimeColumnIndex]
		start, ok := FlexibleTimeToMs(startStr)
		if !ok {
			outcome.warn(newWarning(
				WarningInvalidStartTime, lineNum, startStr,
				"skipping line %d: invalid start time format", lineNum,
			))
			continue
		}

		var end *int64
		if cfg.EndTimeColumnIndex != nil {
			endStr := columns[*cfg.EndTimeColumnIndex]
			if strings.TrimSpace(endStr) != "" {
				if ms, ok := FlexibleTimeToMs(endStr); ok {
					end = msPtr(ms)
				} else {
					outcome.warn(newWarning(
						WarningInvalidEndTime, lineNum, endStr,
						"warning on line %d: invalid end time format, defaulting to null",
						lineNum,
					))
				}
			}
		}

		text := strings.TrimSpace(columns[cfg.TextColumnIndex])
		if text == "" {
			outcome.warn(newWarning(
				WarningEmptyText, lineNum, raw,
				"skipping line %d: text column is empty", lineNum,
			))
			continue
		}

		outcome.add(Line{
			EpisodeID:   episodeID,
			StartTimeMs: start,
			EndTimeMs:   end,
			Text:        text,
		})
	}

	return outcome
}

// negative indices can never be satisfied
func hasColumns(columns []string, cfg ColumnConfig) bool {
	has := func(idx int) bool {
		return idx >= 0 && idx < len(columns)
	}
	if !has(cfg.StartTimeColumnIndex) || !has(cfg.TextColumnIndex) {
		return false
	}
	return cfg.EndTimeColumnIndex == nil || has(*cfg.EndTimeColumnIndex)
}
