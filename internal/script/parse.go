package script

import (
	"fmt"
)

// Parse dispatches content to the parser for format. Unsupported formats and
// a TSV parse without a column config are errors; everything else is reported
// through warnings on the outcome.
func Parse(
	content string,
	format Format,
	episodeID string,
	cfg *ColumnConfig,
) (ParseOutcome, error) {
	switch format {
	case FormatSRT:
		return ParseSRT(content, episodeID), nil
	case FormatVTT:
		return ParseVTT(content, episodeID), nil
	case FormatSSWT:
		return ParseSSWT(content, episodeID), nil
	case FormatTSV:
		if cfg == nil {
			return ParseOutcome{}, ErrMissingColumnConfig
		}
		if err := cfg.Validate(); err != nil {
			return ParseOutcome{}, err
		}
		return ParseTSV(content, episodeID, *cfg), nil
	default:
		return ParseOutcome{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ParseFile resolves ext and parses content with the matching parser.
func ParseFile(
	content string,
	ext string,
	episodeID string,
	cfg *ColumnConfig,
) (ParseOutcome, error) {
	format, err := ParseFormat(ext)
	if err != nil {
		return ParseOutcome{}, err
	}
	return Parse(content, format, episodeID, cfg)
}
