package users_middleware

import (
	"net/http"
	"testing"

	users_testing "matchme/internal/features/users/testing"
	test_utils "matchme/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func Test_OptionalAuthMiddleware_AttachesUserOnlyForValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := users_testing.NewStaticTokenVerifier()
	user := users_testing.NewTestUser("alice")

	router := gin.New()
	router.Use(OptionalAuthMiddleware(verifier))
	router.GET("/whoami", func(ctx *gin.Context) {
		if current, ok := GetUserFromContext(ctx); ok {
			ctx.String(http.StatusOK, current.Username)
			return
		}
		ctx.String(http.StatusOK, "anonymous")
	})

	response := test_utils.MakeGetRequest(t, router, "/whoami", verifier.Issue(user), http.StatusOK)
	assert.Equal(t, "alice", string(response.Body))

	response = test_utils.MakeGetRequest(t, router, "/whoami", "", http.StatusOK)
	assert.Equal(t, "anonymous", string(response.Body))

	response = test_utils.MakeGetRequest(t, router, "/whoami", "Bearer forged", http.StatusOK)
	assert.Equal(t, "anonymous", string(response.Body))
}
