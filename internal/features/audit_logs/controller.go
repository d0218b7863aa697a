package audit_logs

import (
	"net/http"

	users_middleware "matchme/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type AuditLogController struct {
	auditLogService *AuditLogService
}

func (c *AuditLogController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/audit-logs/me", c.GetMyAuditLogs)
}

// GetMyAuditLogs
// @Summary Get own audit logs
// @Description Retrieve audit logs of actions performed by the current user
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Param beforeDate query string false "Filter logs created before this date (RFC3339 format)" format(date-time)
// @Success 200 {object} AuditLogPageDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /audit-logs/me [get]
func (c *AuditLogController) GetMyAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	request := &AuditLogsQueryDTO{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.auditLogService.GetUserAuditLogs(user.ID, request)
	if err != nil {
		c.auditLogService.logger.Error("failed to get audit logs", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit logs"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
