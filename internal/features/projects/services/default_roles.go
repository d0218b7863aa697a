package projects_services

import (
	projects_models "matchme/internal/features/projects/models"
	projects_permissions "matchme/internal/features/projects/permissions"
)

const (
	RoleNameAdmin  = "Admin"
	RoleNameMember = "Member"
	RoleNameViewer = "Viewer"
)

// DefaultProjectRoles are seeded into every new project. Member is the
// default role for people added without an explicit role.
func DefaultProjectRoles() []*projects_models.ProjectRole {
	memberMatrix := projects_permissions.ReadOnly()
	memberMatrix[projects_permissions.ResourceOpenPositions][projects_permissions.ActionCreate] = true

	admin := &projects_models.ProjectRole{Name: RoleNameAdmin, IsSystemRole: true}
	admin.SetMatrix(projects_permissions.FullAccess())

	member := &projects_models.ProjectRole{Name: RoleNameMember, IsSystemRole: true, IsDefault: true}
	member.SetMatrix(memberMatrix)

	viewer := &projects_models.ProjectRole{Name: RoleNameViewer, IsSystemRole: true}
	viewer.SetMatrix(projects_permissions.ReadOnly())

	return []*projects_models.ProjectRole{admin, member, viewer}
}
