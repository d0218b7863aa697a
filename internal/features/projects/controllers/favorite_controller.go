package projects_controllers

import (
	"net/http"

	projects_services "matchme/internal/features/projects/services"
	users_middleware "matchme/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favoriteService *projects_services.FavoriteService
}

func (c *FavoriteController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:slug/favorite", c.AddFavorite)
	router.DELETE("/projects/:slug/favorite", c.RemoveFavorite)
	router.GET("/users/me/favorites", c.GetFavorites)
}

// AddFavorite
// @Summary Favorite a project
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Success 200 {object} projects_dto.FavoriteStatusResponseDTO
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/favorite [post]
func (c *FavoriteController) AddFavorite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	status, err := c.favoriteService.AddFavorite(ctx.Param("slug"), user)
	if err != nil {
		respondError(ctx, err, "Failed to add favorite")
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// RemoveFavorite
// @Summary Unfavorite a project
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Success 200 {object} projects_dto.FavoriteStatusResponseDTO
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/favorite [delete]
func (c *FavoriteController) RemoveFavorite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	status, err := c.favoriteService.RemoveFavorite(ctx.Param("slug"), user)
	if err != nil {
		respondError(ctx, err, "Failed to remove favorite")
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// GetFavorites
// @Summary List favorite projects
// @Description Favorites the caller can still see
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} projects_models.Project
// @Router /users/me/favorites [get]
func (c *FavoriteController) GetFavorites(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projects, err := c.favoriteService.GetFavorites(user)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve favorites")
		return
	}

	ctx.JSON(http.StatusOK, projects)
}
