package docnav

import (
	"strings"
	"time"
)

// LogTimestampFormat identifies which of the two recognized log-line
// timestamp prefixes a document uses.
type LogTimestampFormat int

const (
	// FormatNone means no timestamp format has been detected yet.
	FormatNone LogTimestampFormat = iota
	// FormatPlain is "%Y-%m-%d %H:%M:%S%.9f", e.g. "2024-01-02 08:12:50.123456789 ...".
	FormatPlain
	// FormatBracketed is "[%Y-%m-%d %H:%M:%S]", e.g. "[2024-01-02 08:12:50] ...".
	FormatBracketed
)

const (
	plainLayout     = "2006-01-02 15:04:05"
	bracketedLayout = "[2006-01-02 15:04:05]"
	dateLayout      = "2006-01-02"
)

// detectLogTimestampFormat tries each recognized format, in
// strict-to-loose order, against rows until one parses, mirroring
// original_source's detect_log_timstamp_format. Only the first 100
// rows are tried; Document calls this on each newly loaded chunk until
// a format is found.
func detectLogTimestampFormat(rows []string) (LogTimestampFormat, time.Time, bool) {
	limit := len(rows)
	if limit > 100 {
		limit = 100
	}
	for _, row := range rows[:limit] {
		if ts, ok := parseLogLine(row, FormatPlain); ok {
			return FormatPlain, truncateToDate(ts), true
		}
		if ts, ok := parseLogLine(row, FormatBracketed); ok {
			return FormatBracketed, truncateToDate(ts), true
		}
	}
	return FormatNone, time.Time{}, false
}

func truncateToDate(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

// parseLogLine extracts a timestamp from the start of a log line
// according to format. Fractional seconds, when present in
// FormatPlain, are parsed at nanosecond precision.
func parseLogLine(line string, format LogTimestampFormat) (time.Time, bool) {
	switch format {
	case FormatPlain:
		return parsePlainPrefix(line)
	case FormatBracketed:
		if !strings.HasPrefix(line, "[") {
			return time.Time{}, false
		}
		end := strings.IndexByte(line, ']')
		if end == -1 {
			return time.Time{}, false
		}
		ts, err := time.Parse(bracketedLayout, line[:end+1])
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	default:
		return time.Time{}, false
	}
}

// parsePlainPrefix parses "%Y-%m-%d %H:%M:%S%.9f" at the start of line.
// The fractional-second component is optional and of variable width, so
// it is located manually before handing a fixed-width prefix to
// time.Parse.
func parsePlainPrefix(line string) (time.Time, bool) {
	if len(line) < len(plainLayout) {
		return time.Time{}, false
	}
	prefix := line[:len(plainLayout)]
	ts, err := time.Parse(plainLayout, prefix)
	if err != nil {
		return time.Time{}, false
	}
	rest := line[len(plainLayout):]
	if strings.HasPrefix(rest, ".") {
		i := 1
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i > 1 {
			frac, ferr := time.Parse(plainLayout+"."+strings.Repeat("0", i-1), line[:len(plainLayout)+i])
			if ferr == nil {
				ts = frac
			}
		}
	}
	return ts, true
}

// ParseJumpTarget parses a user-entered timestamp-jump prompt value. The
// date component is optional; when absent, defaultDate (the date fixed
// at format-detection time) is used. Accepts "HH:MM:SS" or bare "HH:MM"
// (seconds default to zero).
func ParseJumpTarget(input string, defaultDate time.Time) (time.Time, bool) {
	input = strings.TrimSpace(input)
	datePart := defaultDate
	timePart := input
	if len(input) >= len(dateLayout) {
		if d, err := time.Parse(dateLayout, input[:len(dateLayout)]); err == nil {
			datePart = d
			timePart = strings.TrimSpace(input[len(dateLayout):])
		}
	}
	if timePart == "" {
		return time.Time{}, false
	}
	layout := "15:04:05"
	if strings.Count(timePart, ":") == 1 {
		timePart += ":00"
	}
	t, err := time.Parse(layout, timePart)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(datePart.Year(), datePart.Month(), datePart.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), true
}
