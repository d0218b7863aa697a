package time_utils

import (
	"fmt"
	"strconv"
	"time"
)

var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts ISO strings or unix timestamps in seconds
// (< 1e12) or milliseconds (>= 1e12) and returns the instant in UTC.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("timestamp is empty")
	}

	for _, format := range timestampFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC(), nil
		}
	}

	if unix, err := strconv.ParseInt(value, 10, 64); err == nil {
		if unix >= 1e12 {
			return time.UnixMilli(unix).UTC(), nil
		}

		return time.Unix(unix, 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", value)
}

// AddCalendarMonths shifts t by whole calendar months. Day overflow is
// normalized forward, so Jan 31 + 1 month is Mar 3 (Mar 2 in leap years).
func AddCalendarMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}
