package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	time_utils "matchme/internal/util/time"

	"golang.org/x/time/rate"
)

const providerTimeout = 15 * time.Second

type ProfileViewsProvider interface {
	GetProfileViews(ctx context.Context, slug string, dateRange time_utils.DateRange) ([]ProfileViewPointDTO, error)
}

// ProviderClient calls the hosted analytics API. Outbound calls share one
// token bucket so a burst of dashboard loads cannot exceed the provider quota.
type ProviderClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewProviderClient(baseURL, apiKey string, rps float64) *ProviderClient {
	if rps <= 0 {
		rps = 1
	}

	return &ProviderClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: providerTimeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), max(1, int(rps))),
	}
}

type providerResponse struct {
	Data []struct {
		Date  string `json:"date"`
		Views int64  `json:"views"`
	} `json:"data"`
}

func (c *ProviderClient) GetProfileViews(
	ctx context.Context,
	slug string,
	dateRange time_utils.DateRange,
) ([]ProfileViewPointDTO, error) {
	if c.baseURL == "" {
		return nil, ErrProviderNotConfigured
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	query := url.Values{}
	query.Set("slug", slug)
	query.Set("date_range", string(dateRange))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/profile_views.json?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build analytics request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	var decoded providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode analytics response: %w", err)
	}

	points := make([]ProfileViewPointDTO, 0, len(decoded.Data))
	for _, row := range decoded.Data {
		points = append(points, ProfileViewPointDTO{Date: row.Date, Views: row.Views})
	}

	return points, nil
}
