package notifications_controllers

import (
	"errors"
	"net/http"

	notifications_dto "matchme/internal/features/notifications/dto"
	notifications_models "matchme/internal/features/notifications/models"
	notifications_services "matchme/internal/features/notifications/services"
	users_middleware "matchme/internal/features/users/middleware"
	"matchme/internal/util/logger"
	time_utils "matchme/internal/util/time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationController struct {
	notificationService *notifications_services.NotificationService
}

func (c *NotificationController) RegisterRoutes(router *gin.RouterGroup) {
	notificationRoutes := router.Group("/notifications")

	notificationRoutes.POST("", c.CreateNotification)
	notificationRoutes.GET("", c.GetFeed)
	notificationRoutes.GET("/counts", c.GetCounts)
	notificationRoutes.PUT("/read-all", c.MarkAllRead)
	notificationRoutes.PUT("/:id/read", c.MarkRead)
}

// CreateNotification
// @Summary Send a notification
// @Description Sends a notification from the caller to followingId, e.g. a follow event
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body notifications_dto.CreateNotificationRequestDTO true "Notification data"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /notifications [post]
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request notifications_dto.CreateNotificationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.notificationService.CreateNotification(&request, user); err != nil {
		if errors.Is(err, notifications_services.ErrUnknownType) ||
			errors.Is(err, notifications_services.ErrSelfNotification) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		logger.GetLogger().Error("failed to create notification", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// GetFeed
// @Summary Get grouped notification feed
// @Description Newest first, bursts of groupable types collapsed per recency tier
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Raw notifications to load" default(50)
// @Param before query string false "Cursor: load notifications created before this time (ISO 8601 or unix seconds/millis)"
// @Param beforeId query string false "Cursor: id of the last notification seen, continues past rows sharing the before time"
// @Success 200 {object} notifications_dto.FeedResponseDTO
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (c *NotificationController) GetFeed(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request := &notifications_dto.GetFeedRequestDTO{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	if rawBefore := ctx.Query("before"); rawBefore != "" {
		before, err := time_utils.ParseTimestamp(rawBefore)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid before cursor"})
			return
		}
		request.Before = &notifications_models.FeedCursor{CreatedAt: before}

		if rawBeforeID := ctx.Query("beforeId"); rawBeforeID != "" {
			beforeID, err := uuid.Parse(rawBeforeID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid before cursor"})
				return
			}
			request.Before.ID = beforeID
		}
	}

	response, err := c.notificationService.GetFeed(user, request)
	if err != nil {
		logger.GetLogger().Error("failed to get notification feed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCounts
// @Summary Get unread badge counts
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string
// @Router /notifications/counts [get]
func (c *NotificationController) GetCounts(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	counts, err := c.notificationService.GetCounts(user)
	if err != nil {
		logger.GetLogger().Error("failed to get notification counts", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notification counts"})
		return
	}

	ctx.JSON(http.StatusOK, counts)
}

// MarkRead
// @Summary Mark feed entry read
// @Description Marks the notification and, for grouped entries, the rest of its group
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} notifications_dto.MarkReadResponseDTO
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [put]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	response, err := c.notificationService.MarkRead(user, notificationID)
	if err != nil {
		if errors.Is(err, notifications_services.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		logger.GetLogger().Error("failed to mark notification read", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// MarkAllRead
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} notifications_dto.MarkReadResponseDTO
// @Router /notifications/read-all [put]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	response, err := c.notificationService.MarkAllRead(user)
	if err != nil {
		logger.GetLogger().Error("failed to mark notifications read", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
