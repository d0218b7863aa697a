package users_controllers

import (
	"net/http"

	users_middleware "matchme/internal/features/users/middleware"
	users_services "matchme/internal/features/users/services"
	http_utils "matchme/internal/util/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *users_services.UserService
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/username-availability", c.CheckUsernameAvailability)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetCurrentUser)
}

// GetCurrentUser
// @Summary Get current user profile
// @Description Get the profile of the user behind the session token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, c.userService.GetCurrentUserProfile(user))
}

// CheckUsernameAvailability
// @Summary Check username availability
// @Description Validates a username candidate and reports whether it is free. Rate limited per client IP.
// @Tags users
// @Produce json
// @Param username query string true "Username candidate"
// @Success 200 {object} users_dto.UsernameAvailabilityResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/username-availability [get]
func (c *UserController) CheckUsernameAvailability(ctx *gin.Context) {
	response, err := c.userService.CheckUsernameAvailability(
		ctx.Request.Context(),
		http_utils.ExtractClientIP(ctx),
		ctx.Query("username"),
	)
	if err != nil {
		http_utils.RespondAvailabilityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
