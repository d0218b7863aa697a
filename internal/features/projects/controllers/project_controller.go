package projects_controllers

import (
	"errors"
	"net/http"

	"matchme/internal/features/audit_logs"
	projects_dto "matchme/internal/features/projects/dto"
	projects_services "matchme/internal/features/projects/services"
	users_middleware "matchme/internal/features/users/middleware"
	http_utils "matchme/internal/util/http"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

// RegisterPublicRoutes mounts routes that also serve anonymous callers. The
// group is expected to run the optional auth middleware.
func (c *ProjectController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/projects/slug-availability", c.CheckSlugAvailability)
	router.GET("/projects/:slug", c.GetProject)
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projectRoutes := router.Group("/projects")

	projectRoutes.POST("", c.CreateProject)
	projectRoutes.GET("", c.GetProjects)
	projectRoutes.PUT("/:slug", c.UpdateProject)
	projectRoutes.DELETE("/:slug", c.DeleteProject)
	projectRoutes.GET("/:slug/slug-status", c.GetSlugStatus)
	projectRoutes.PUT("/:slug/slug", c.ChangeSlug)
	projectRoutes.GET("/:slug/audit-logs", c.GetProjectAuditLogs)
}

// CreateProject
// @Summary Create a new project
// @Description Create a project owned by the caller and seed its default roles
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body projects_dto.CreateProjectRequestDTO true "Project creation data"
// @Success 200 {object} projects_models.Project
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	project, err := c.projectService.CreateProject(&request, user)
	if err != nil {
		respondError(ctx, err, "Failed to create project")
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// GetProjects
// @Summary List user's projects
// @Description Projects the caller owns or is an active member of
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} projects_dto.ListProjectsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /projects [get]
func (c *ProjectController) GetProjects(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.projectService.GetUserProjects(user)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve projects")
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProject
// @Summary Get project with caller permissions
// @Description Returns the project together with the caller's effective permission matrix. Works without a token for public projects.
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} projects_services.AccessResult
// @Failure 404 {object} map[string]string
// @Router /projects/{slug} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	access, err := c.projectService.GetProject(ctx.Param("slug"), user)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve project")
		return
	}

	ctx.JSON(http.StatusOK, access)
}

// UpdateProject
// @Summary Update project settings
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Param request body projects_dto.UpdateProjectRequestDTO true "Project update data"
// @Success 200 {object} projects_models.Project
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{slug} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.UpdateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Param("slug"), &request, user)
	if err != nil {
		respondError(ctx, err, "Failed to update project")
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// DeleteProject
// @Summary Delete project
// @Description Owner only. Blocked with 409 while other active team members remain.
// @Tags projects
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} projects_dto.DeleteProjectBlockedResponseDTO
// @Router /projects/{slug} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	decision, err := c.projectService.DeleteProject(ctx.Param("slug"), user)
	if err != nil {
		if errors.Is(err, projects_services.ErrProjectHasMembers) && decision != nil {
			ctx.JSON(http.StatusConflict, projects_dto.DeleteProjectBlockedResponseDTO{
				Error:  err.Error(),
				Reason: decision.Reason,
			})
			return
		}

		respondError(ctx, err, "Failed to delete project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// GetSlugStatus
// @Summary Get slug change status
// @Description Reports whether the slug may be changed now and, if not, when
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Success 200 {object} projects_dto.SlugStatusResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/slug-status [get]
func (c *ProjectController) GetSlugStatus(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	status, err := c.projectService.GetSlugStatus(ctx.Param("slug"), user)
	if err != nil {
		respondError(ctx, err, "Failed to get slug status")
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// ChangeSlug
// @Summary Change project slug
// @Description Owner only, at most once per cooldown period
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Current project slug"
// @Param request body projects_dto.ChangeSlugRequestDTO true "New slug"
// @Success 200 {object} projects_models.Project
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /projects/{slug}/slug [put]
func (c *ProjectController) ChangeSlug(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.ChangeSlugRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	project, decision, err := c.projectService.ChangeSlug(ctx.Param("slug"), request.Slug, user)
	if err != nil {
		if errors.Is(err, projects_services.ErrSlugCooldown) && decision != nil {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":                      err.Error(),
				"nextAvailableDate":          decision.NextAvailableDate,
				"nextAvailableDateFormatted": decision.NextAvailableDateFormatted,
			})
			return
		}

		respondError(ctx, err, "Failed to change slug")
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// CheckSlugAvailability
// @Summary Check slug availability
// @Description Validates a slug candidate and reports whether it is free. Rate limited per client IP.
// @Tags projects
// @Produce json
// @Param slug query string true "Slug candidate"
// @Success 200 {object} projects_dto.SlugAvailabilityResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /projects/slug-availability [get]
func (c *ProjectController) CheckSlugAvailability(ctx *gin.Context) {
	response, err := c.projectService.CheckSlugAvailability(
		ctx.Request.Context(),
		http_utils.ExtractClientIP(ctx),
		ctx.Query("slug"),
	)
	if err != nil {
		http_utils.RespondAvailabilityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProjectAuditLogs
// @Summary Get project audit logs
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Param beforeDate query string false "Filter logs created before this date (RFC3339 format)" format(date-time)
// @Success 200 {object} audit_logs.AuditLogPageDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/audit-logs [get]
func (c *ProjectController) GetProjectAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	request := &audit_logs.AuditLogsQueryDTO{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.projectService.GetProjectAuditLogs(ctx.Param("slug"), user, request)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve audit logs")
		return
	}

	ctx.JSON(http.StatusOK, response)
}
