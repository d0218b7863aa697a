package http_utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ExtractClientIP prefers proxy headers over the socket address.
func ExtractClientIP(ctx *gin.Context) string {
	forwarded := ctx.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		// first hop is the client
		if idx := strings.Index(forwarded, ","); idx != -1 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}

	realIP := ctx.GetHeader("X-Real-IP")
	if realIP != "" {
		return strings.TrimSpace(realIP)
	}

	return ctx.ClientIP()
}
