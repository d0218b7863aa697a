package projects_services

import (
	"regexp"

	"matchme/internal/util/availability"
)

var SlugRules = availability.Rules{
	Field:       "slug",
	MinLength:   3,
	MaxLength:   50,
	Pattern:     regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`),
	PatternHint: "slug may contain lowercase letters, digits and single hyphens, and cannot start or end with a hyphen",
}

func NormalizeSlug(slug string) string {
	return availability.Normalize(slug)
}

// ValidateSlug checks an already normalized slug.
func ValidateSlug(slug string) error {
	return availability.NewChecker(nil, SlugRules).Validate(slug)
}
