package time_utils

import (
	"fmt"
	"time"
)

type DateRange string

const (
	DateRange7Days  DateRange = "7d"
	DateRange30Days DateRange = "30d"
	DateRange90Days DateRange = "90d"
)

func (r DateRange) IsValid() bool {
	switch r {
	case DateRange7Days, DateRange30Days, DateRange90Days:
		return true
	default:
		return false
	}
}

func (r DateRange) Duration() time.Duration {
	switch r {
	case DateRange7Days:
		return 7 * 24 * time.Hour
	case DateRange30Days:
		return 30 * 24 * time.Hour
	case DateRange90Days:
		return 90 * 24 * time.Hour
	default:
		return 0
	}
}

// ParseDateRange defaults an empty value to 30 days.
func ParseDateRange(value string) (DateRange, error) {
	if value == "" {
		return DateRange30Days, nil
	}

	dateRange := DateRange(value)
	if !dateRange.IsValid() {
		return "", fmt.Errorf("unsupported date range: %q", value)
	}

	return dateRange, nil
}

// Since returns the start of the range ending at now.
func (r DateRange) Since(now time.Time) time.Time {
	return now.Add(-r.Duration())
}
