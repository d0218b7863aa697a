package projects_services

import (
	"encoding/json"
	"errors"
	"testing"

	projects_dto "matchme/internal/features/projects/dto"
	projects_permissions "matchme/internal/features/projects/permissions"
	users_testing "matchme/internal/features/users/testing"
	"matchme/internal/util/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateRole_WithValidMatrix_StoresNormalizedPermissions(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	env.store.AddProject(owner.ID, "team-project", false)

	role, err := env.roles.CreateRole("team-project", &projects_dto.RoleRequestDTO{
		Name:        " Recruiter ",
		Permissions: json.RawMessage(`{"Members":{"view":true,"create":true}}`),
	}, owner)
	require.NoError(t, err)

	assert.Equal(t, "Recruiter", role.Name)
	assert.True(t, role.Permissions.Allows(projects_permissions.ResourceMembers, projects_permissions.ActionCreate))
	assert.False(t, role.Permissions.Allows(projects_permissions.ResourceSettings, projects_permissions.ActionView))
}

func Test_CreateRole_WithUnknownResource_ReturnsValidationError(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	env.store.AddProject(owner.ID, "team-project", false)

	_, err := env.roles.CreateRole("team-project", &projects_dto.RoleRequestDTO{
		Name:        "Broken",
		Permissions: json.RawMessage(`{"Billing":{"view":true}}`),
	}, owner)

	var validationErr *validation.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "permissions", validationErr.Field)
}

func Test_UpdateRole_RenamingSystemRole_IsRejected(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	project := env.store.AddProject(owner.ID, "team-project", false)
	role := env.store.AddRole(project.ID, RoleNameAdmin, projects_permissions.FullAccess(), false)
	role.IsSystemRole = true

	_, err := env.roles.UpdateRole("team-project", role.ID, &projects_dto.RoleRequestDTO{
		Name:        "Boss",
		Permissions: json.RawMessage(`{}`),
	}, owner)

	assert.ErrorIs(t, err, ErrSystemRoleProtected)
}

func Test_DeleteRole_DefaultRole_IsRejected(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	project := env.store.AddProject(owner.ID, "team-project", false)
	role := env.store.AddRole(project.ID, "Default", projects_permissions.ReadOnly(), true)

	assert.ErrorIs(t, env.roles.DeleteRole("team-project", role.ID, owner), ErrDefaultRoleProtected)
}

func Test_DeleteRole_CustomRole_MovesMembersToDefault(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	member := users_testing.NewTestUser("member")
	project := env.store.AddProject(owner.ID, "team-project", false)
	env.store.AddRole(project.ID, "Default", projects_permissions.ReadOnly(), true)
	custom := env.store.AddRole(project.ID, "Custom", projects_permissions.FullAccess(), false)
	row := env.store.AddMember(project.ID, member.ID, &custom.ID, true)

	require.NoError(t, env.roles.DeleteRole("team-project", custom.ID, owner))

	assert.Nil(t, env.store.Members[row.ID].RoleID)

	access, err := env.resolver.ResolveAccess("team-project", member)
	require.NoError(t, err)
	assert.False(t, access.Can(projects_permissions.ResourceSettings, projects_permissions.ActionUpdate))
	assert.True(t, access.Can(projects_permissions.ResourceSettings, projects_permissions.ActionView))
}

func Test_SetDefaultRole_MovesDefaultFlag(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	project := env.store.AddProject(owner.ID, "team-project", false)
	first := env.store.AddRole(project.ID, "First", projects_permissions.ReadOnly(), true)
	second := env.store.AddRole(project.ID, "Second", projects_permissions.ReadOnly(), false)

	require.NoError(t, env.roles.SetDefaultRole("team-project", second.ID, owner))

	assert.False(t, env.store.Roles[first.ID].IsDefault)
	assert.True(t, env.store.Roles[second.ID].IsDefault)
}

func Test_ListRoles_AsStranger_ReturnsProjectNotFound(t *testing.T) {
	env := newTestEnv(testNow)
	env.store.AddProject(users_testing.NewTestUser("owner").ID, "team-project", false)

	_, err := env.roles.ListRoles("team-project", users_testing.NewTestUser("stranger"))

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func Test_CreateRole_BroaderThanCallerPermissions_IsRejected(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	roleManager := users_testing.NewTestUser("role-manager")
	project := env.store.AddProject(owner.ID, "team-project", false)

	matrix := projects_permissions.ReadOnly()
	matrix[projects_permissions.ResourceRoles][projects_permissions.ActionCreate] = true
	managerRole := env.store.AddRole(project.ID, "Role Manager", matrix, false)
	env.store.AddMember(project.ID, roleManager.ID, &managerRole.ID, true)

	_, err := env.roles.CreateRole("team-project", &projects_dto.RoleRequestDTO{
		Name:        "Escalated",
		Permissions: json.RawMessage(`{"Settings":{"delete":true}}`),
	}, roleManager)

	assert.ErrorIs(t, err, ErrRoleExceedsPermissions)
}
