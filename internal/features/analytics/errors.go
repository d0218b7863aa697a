package analytics

import "errors"

var (
	// ErrAnalyticsNotFound hides both missing targets and targets the caller may not inspect.
	ErrAnalyticsNotFound     = errors.New("analytics not found")
	ErrProviderNotConfigured = errors.New("analytics provider is not configured")
	ErrProviderUnavailable   = errors.New("analytics provider request failed")
)
