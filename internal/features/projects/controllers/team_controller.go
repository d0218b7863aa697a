package projects_controllers

import (
	"net/http"

	projects_dto "matchme/internal/features/projects/dto"
	projects_services "matchme/internal/features/projects/services"
	users_middleware "matchme/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamController struct {
	teamService *projects_services.TeamService
}

func (c *TeamController) RegisterRoutes(router *gin.RouterGroup) {
	teamRoutes := router.Group("/projects/:slug")

	teamRoutes.GET("/members", c.ListMembers)
	teamRoutes.POST("/members", c.AddMember)
	teamRoutes.PUT("/members/:userId", c.UpdateMember)
	teamRoutes.DELETE("/members/:userId", c.RemoveMember)
	teamRoutes.POST("/leave", c.LeaveProject)
}

// ListMembers
// @Summary List active team members
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Success 200 {object} projects_dto.ListTeamMembersResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/members [get]
func (c *TeamController) ListMembers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.teamService.ListMembers(ctx.Param("slug"), user)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve team members")
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AddMember
// @Summary Add team member
// @Description Adds a user to the team or reactivates a previous membership. The user receives a project invite notification.
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Param request body projects_dto.AddTeamMemberRequestDTO true "Member data"
// @Success 200 {object} projects_models.ProjectTeamMember
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /projects/{slug}/members [post]
func (c *TeamController) AddMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.AddTeamMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	member, err := c.teamService.AddMember(ctx.Param("slug"), &request, user)
	if err != nil {
		respondError(ctx, err, "Failed to add team member")
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// UpdateMember
// @Summary Update team member role
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Param userId path string true "Member user ID"
// @Param request body projects_dto.UpdateTeamMemberRequestDTO true "Role data"
// @Success 200 {object} projects_models.ProjectTeamMember
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/members/{userId} [put]
func (c *TeamController) UpdateMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	memberUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var request projects_dto.UpdateTeamMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	member, err := c.teamService.UpdateMember(ctx.Param("slug"), memberUserID, &request, user)
	if err != nil {
		respondError(ctx, err, "Failed to update team member")
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// RemoveMember
// @Summary Remove team member
// @Tags team
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Param userId path string true "Member user ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/members/{userId} [delete]
func (c *TeamController) RemoveMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	memberUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := c.teamService.RemoveMember(ctx.Param("slug"), memberUserID, user); err != nil {
		respondError(ctx, err, "Failed to remove team member")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Team member removed successfully"})
}

// LeaveProject
// @Summary Leave project
// @Description Deactivates the caller's own membership. Owners cannot leave.
// @Tags team
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/leave [post]
func (c *TeamController) LeaveProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := c.teamService.LeaveProject(ctx.Param("slug"), user); err != nil {
		respondError(ctx, err, "Failed to leave project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Left project successfully"})
}
