package http_utils

import (
	"errors"
	"net/http"
	"strconv"

	"matchme/internal/util/availability"
	"matchme/internal/util/logger"
	"matchme/internal/util/validation"

	"github.com/gin-gonic/gin"
)

// RespondValidationError writes a 400 when err is a field-level validation
// error and reports whether it did.
func RespondValidationError(ctx *gin.Context, err error) bool {
	var validationErr *validation.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	ctx.JSON(http.StatusBadRequest, gin.H{
		"error": validationErr.Message,
		"code":  validationErr.Code,
		"field": validationErr.Field,
	})

	return true
}

// RespondAvailabilityError maps availability pipeline errors: validation to
// 400, rate limit to 429 with Retry-After, anything else to a logged 500.
func RespondAvailabilityError(ctx *gin.Context, err error) {
	if RespondValidationError(ctx, err) {
		return
	}

	var rateLimitedErr *availability.RateLimitedError
	if errors.As(err, &rateLimitedErr) {
		ctx.Header("Retry-After", strconv.Itoa(rateLimitedErr.RetryAfterSec))
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many attempts. Please try again later."})
		return
	}

	logger.GetLogger().Error("availability check failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
}
