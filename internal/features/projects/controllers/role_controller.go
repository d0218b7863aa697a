package projects_controllers

import (
	"net/http"

	projects_dto "matchme/internal/features/projects/dto"
	projects_services "matchme/internal/features/projects/services"
	users_middleware "matchme/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoleController struct {
	roleService *projects_services.RoleService
}

func (c *RoleController) RegisterRoutes(router *gin.RouterGroup) {
	roleRoutes := router.Group("/projects/:slug/roles")

	roleRoutes.GET("", c.ListRoles)
	roleRoutes.POST("", c.CreateRole)
	roleRoutes.PUT("/:roleId", c.UpdateRole)
	roleRoutes.DELETE("/:roleId", c.DeleteRole)
	roleRoutes.PUT("/:roleId/default", c.SetDefaultRole)
}

func parseRoleID(ctx *gin.Context) (uuid.UUID, bool) {
	roleID, err := uuid.Parse(ctx.Param("roleId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return uuid.Nil, false
	}

	return roleID, true
}

// ListRoles
// @Summary List project roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Success 200 {object} projects_dto.ListRolesResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/roles [get]
func (c *RoleController) ListRoles(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.roleService.ListRoles(ctx.Param("slug"), user)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve roles")
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateRole
// @Summary Create project role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Param request body projects_dto.RoleRequestDTO true "Role data"
// @Success 200 {object} projects_dto.RoleResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{slug}/roles [post]
func (c *RoleController) CreateRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.RoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	role, err := c.roleService.CreateRole(ctx.Param("slug"), &request, user)
	if err != nil {
		respondError(ctx, err, "Failed to create role")
		return
	}

	ctx.JSON(http.StatusOK, role)
}

// UpdateRole
// @Summary Update project role
// @Description System roles keep their name; only their permissions may change
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Param roleId path string true "Role ID"
// @Param request body projects_dto.RoleRequestDTO true "Role data"
// @Success 200 {object} projects_dto.RoleResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /projects/{slug}/roles/{roleId} [put]
func (c *RoleController) UpdateRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roleID, ok := parseRoleID(ctx)
	if !ok {
		return
	}

	var request projects_dto.RoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	role, err := c.roleService.UpdateRole(ctx.Param("slug"), roleID, &request, user)
	if err != nil {
		respondError(ctx, err, "Failed to update role")
		return
	}

	ctx.JSON(http.StatusOK, role)
}

// DeleteRole
// @Summary Delete project role
// @Description Members holding the role fall back to the default role
// @Tags roles
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Param roleId path string true "Role ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /projects/{slug}/roles/{roleId} [delete]
func (c *RoleController) DeleteRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roleID, ok := parseRoleID(ctx)
	if !ok {
		return
	}

	if err := c.roleService.DeleteRole(ctx.Param("slug"), roleID, user); err != nil {
		respondError(ctx, err, "Failed to delete role")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
}

// SetDefaultRole
// @Summary Make role the project default
// @Tags roles
// @Security BearerAuth
// @Param slug path string true "Project slug"
// @Param roleId path string true "Role ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{slug}/roles/{roleId}/default [put]
func (c *RoleController) SetDefaultRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roleID, ok := parseRoleID(ctx)
	if !ok {
		return
	}

	if err := c.roleService.SetDefaultRole(ctx.Param("slug"), roleID, user); err != nil {
		respondError(ctx, err, "Failed to set default role")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Default role updated successfully"})
}
