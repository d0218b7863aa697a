package analytics

import (
	"errors"
	"net/http"

	users_middleware "matchme/internal/features/users/middleware"
	users_models "matchme/internal/features/users/models"
	http_utils "matchme/internal/util/http"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analyticsService *AnalyticsService
}

func (c *AnalyticsController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/bar-list", c.GetBarList)
	router.GET("/analytics-visits", c.GetVisits)
	router.GET("/profile-views", c.GetProfileViews)
}

// GetBarList
// @Summary Visit breakdown
// @Description Visits of a profile or project grouped by referrer, country, device, browser or os
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id query string true "Profile or project ID"
// @Param type query string true "referrer, country, device, browser or os"
// @Param table query string true "profile_visits or project_visits"
// @Success 200 {array} BarListItemDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bar-list [get]
func (c *AnalyticsController) GetBarList(ctx *gin.Context) {
	c.handleVisits(ctx, c.analyticsService.GetBarList)
}

// GetVisits
// @Summary Visits over time
// @Description Visits of a profile or project bucketed by day, week or month
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id query string true "Profile or project ID"
// @Param type query string true "day, week or month"
// @Param table query string true "profile_visits or project_visits"
// @Success 200 {array} BarListItemDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analytics-visits [get]
func (c *AnalyticsController) GetVisits(ctx *gin.Context) {
	c.handleVisits(ctx, c.analyticsService.GetVisits)
}

func (c *AnalyticsController) handleVisits(
	ctx *gin.Context,
	load func(user *users_models.User, query *VisitsQueryDTO) ([]BarListItemDTO, error),
) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	query := &VisitsQueryDTO{}
	if err := ctx.ShouldBindQuery(query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id, type and table are required"})
		return
	}

	items, err := load(user, query)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// GetProfileViews
// @Summary Profile views from the analytics provider
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param slug query string true "Username of the profile"
// @Param dateRange query string false "7d, 30d or 90d" default(30d)
// @Success 200 {object} ProfileViewsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profile-views [get]
func (c *AnalyticsController) GetProfileViews(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	query := &ProfileViewsQueryDTO{}
	if err := ctx.ShouldBindQuery(query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
		return
	}

	response, err := c.analyticsService.GetProfileViews(ctx.Request.Context(), user, query)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// respondError expects backend failures to be logged already.
func (c *AnalyticsController) respondError(ctx *gin.Context, err error) {
	if http_utils.RespondValidationError(ctx, err) {
		return
	}

	if errors.Is(err, ErrAnalyticsNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
}
