package users_middleware

import (
	"net/http"
	"strings"

	users_interfaces "matchme/internal/features/users/interfaces"
	users_models "matchme/internal/features/users/models"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

func extractBearerToken(ctx *gin.Context) string {
	token := ctx.GetHeader("Authorization")

	if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
		token = token[7:]
	}

	return strings.TrimSpace(token)
}

// AuthMiddleware validates JWT token and adds user to context
func AuthMiddleware(verifier users_interfaces.TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := extractBearerToken(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			ctx.Abort()
			return
		}

		user, err := verifier.GetUserFromToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			ctx.Abort()
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is present and
// lets anonymous requests through otherwise.
func OptionalAuthMiddleware(verifier users_interfaces.TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := extractBearerToken(ctx)
		if token != "" {
			if user, err := verifier.GetUserFromToken(token); err == nil {
				ctx.Set(userContextKey, user)
			}
		}

		ctx.Next()
	}
}

// GetUserFromContext helper function to extract user from gin context
func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}
