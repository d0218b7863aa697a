package projects_controllers

import (
	"errors"
	"net/http"

	projects_services "matchme/internal/features/projects/services"
	http_utils "matchme/internal/util/http"
	"matchme/internal/util/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses. Resolution failures are
// already logged by the resolver and surface as a plain 404.
func respondError(ctx *gin.Context, err error, fallbackMessage string) {
	if http_utils.RespondValidationError(ctx, err) {
		return
	}

	switch {
	case errors.Is(err, projects_services.ErrProjectNotFound),
		errors.Is(err, projects_services.ErrAccessResolutionFailed):
		ctx.JSON(http.StatusNotFound, gin.H{"error": projects_services.ErrProjectNotFound.Error()})
	case errors.Is(err, projects_services.ErrMemberNotFound),
		errors.Is(err, projects_services.ErrRoleNotFound),
		errors.Is(err, projects_services.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, projects_services.ErrInsufficientPermissions),
		errors.Is(err, projects_services.ErrOnlyOwner),
		errors.Is(err, projects_services.ErrRoleExceedsPermissions):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, projects_services.ErrOwnerIsNotMember):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, projects_services.ErrSlugTaken),
		errors.Is(err, projects_services.ErrMemberAlreadyActive),
		errors.Is(err, projects_services.ErrSystemRoleProtected),
		errors.Is(err, projects_services.ErrDefaultRoleProtected):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.GetLogger().Error(fallbackMessage, "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
	}
}
