package availability

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	rate_limit "matchme/internal/util/rate_limit"
	"matchme/internal/util/validation"
)

var ErrTooManyAttempts = errors.New("too many attempts, please try again later")

// RateLimitedError carries the retry hint and unwraps to ErrTooManyAttempts.
type RateLimitedError struct {
	RetryAfterSec int
}

func (e *RateLimitedError) Error() string {
	return ErrTooManyAttempts.Error()
}

func (e *RateLimitedError) Unwrap() error {
	return ErrTooManyAttempts
}

type AttemptLimiter interface {
	Allow(ctx context.Context, subject string) (*rate_limit.RateLimitResult, error)
}

type Rules struct {
	Field     string
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	// PatternHint is shown when Pattern does not match.
	PatternHint string
}

type Result struct {
	Candidate string `json:"candidate"`
	Available bool   `json:"available"`
}

// Checker runs validate -> rate limit -> existence query, in that order, so
// malformed candidates never reach the limiter or the database.
type Checker struct {
	limiter AttemptLimiter
	rules   Rules
}

func NewChecker(limiter AttemptLimiter, rules Rules) *Checker {
	return &Checker{
		limiter: limiter,
		rules:   rules,
	}
}

func Normalize(candidate string) string {
	return strings.ToLower(strings.TrimSpace(candidate))
}

func (c *Checker) Validate(candidate string) error {
	length := utf8.RuneCountInString(candidate)

	if length == 0 {
		return validation.NewValidationError(
			validation.ErrorRequired,
			c.rules.Field,
			fmt.Sprintf("%s is required", c.rules.Field),
		)
	}

	if length < c.rules.MinLength {
		return validation.NewValidationError(
			validation.ErrorTooShort,
			c.rules.Field,
			fmt.Sprintf("%s must be at least %d characters", c.rules.Field, c.rules.MinLength),
		)
	}

	if length > c.rules.MaxLength {
		return validation.NewValidationError(
			validation.ErrorTooLong,
			c.rules.Field,
			fmt.Sprintf("%s must be at most %d characters", c.rules.Field, c.rules.MaxLength),
		)
	}

	if c.rules.Pattern != nil && !c.rules.Pattern.MatchString(candidate) {
		return validation.NewValidationError(validation.ErrorInvalidFormat, c.rules.Field, c.rules.PatternHint)
	}

	return nil
}

func (c *Checker) Check(
	ctx context.Context,
	clientIP string,
	candidate string,
	isTaken func(candidate string) (bool, error),
) (*Result, error) {
	normalized := Normalize(candidate)

	if err := c.Validate(normalized); err != nil {
		return nil, err
	}

	limit, err := c.limiter.Allow(ctx, clientIP)
	if err != nil {
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}

	if !limit.Allowed {
		return nil, &RateLimitedError{RetryAfterSec: limit.RetryAfterSec}
	}

	taken, err := isTaken(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s availability: %w", c.rules.Field, err)
	}

	return &Result{
		Candidate: normalized,
		Available: !taken,
	}, nil
}
