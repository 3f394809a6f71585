package script

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	srtTimeRegex     = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)
	vttTimeRegex     = regexp.MustCompile(`^(?:(\d{2}):)?(\d{2}):(\d{2})\.(\d{3})$`)
	bracketTimeRegex = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})\.(\d{3})$`)
)

// SRTTimeToMs converts HH:MM:SS,mmm to milliseconds.
func SRTTimeToMs(s string) (int64, bool) {
	m := srtTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	return componentsToMs(m[1], m[2], m[3], m[4])
}

// VTTTimeToMs converts [HH:]MM:SS.mmm to milliseconds.
func VTTTimeToMs(s string) (int64, bool) {
	m := vttTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours := m[1]
	if hours == "" {
		hours = "0"
	}
	return componentsToMs(hours, m[2], m[3], m[4])
}

// BracketTimeToMs converts HH:MM:SS.mmm to milliseconds, rejecting hours
// outside 0-23 and minutes or seconds outside 0-59.
func BracketTimeToMs(s string) (int64, bool) {
	m := bracketTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	if h > 23 || mins > 59 || sec > 59 {
		return 0, false
	}
	return componentsToMs(m[1], m[2], m[3], m[4])
}

// FlexibleTimeToMs accepts the loose notations found in spreadsheets:
// bare seconds ("2.5"), MM:SS[.ms], HH:MM:SS[.ms] and an optional trailing
// "s" unit ("2s"). The result is rounded to the nearest millisecond.
func FlexibleTimeToMs(s string) (int64, bool) {
	cleaned := strings.TrimSpace(strings.ToLower(s))
	cleaned = strings.TrimSuffix(cleaned, "s")
	if cleaned == "" {
		return 0, false
	}

	parts := strings.Split(cleaned, ":")
	if len(parts) > 3 {
		return 0, false
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		values[i] = v
	}

	var totalSeconds float64
	switch len(values) {
	case 1:
		totalSeconds = values[0]
	case 2:
		totalSeconds = values[0]*60 + values[1]
	case 3:
		totalSeconds = values[0]*3600 + values[1]*60 + values[2]
	}

	ms := math.Round(totalSeconds * 1000)
	if ms < 0 || ms > math.MaxInt64/2 {
		return 0, false
	}
	return int64(ms), true
}

func componentsToMs(hours, minutes, seconds, millis string) (int64, bool) {
	h, err := strconv.ParseInt(hours, 10, 64)
	if err != nil {
		return 0, false
	}
	m, err := strconv.ParseInt(minutes, 10, 64)
	if err != nil {
		return 0, false
	}
	s, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		return 0, false
	}
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return 0, false
	}
	return (h*3600+m*60+s)*1000 + ms, true
}
