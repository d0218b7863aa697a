package projects_services

import (
	"errors"
	"testing"

	projects_dto "matchme/internal/features/projects/dto"
	projects_enums "matchme/internal/features/projects/enums"
	projects_permissions "matchme/internal/features/projects/permissions"
	users_testing "matchme/internal/features/users/testing"
	"matchme/internal/util/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AddMember_AsOwner_CreatesMemberAndSendsInvite(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	invitee := users_testing.NewTestUser("invitee")
	env.users.Add(invitee)
	project := env.store.AddProject(owner.ID, "team-project", false)

	member, err := env.team.AddMember("team-project", &projects_dto.AddTeamMemberRequestDTO{
		UserID: invitee.ID,
	}, owner)
	require.NoError(t, err)

	assert.True(t, member.IsActive)
	assert.Equal(t, projects_enums.TeamPermissionMember, member.Permission)

	require.Len(t, env.notifications.Sent, 1)
	sent := env.notifications.Sent[0]
	assert.Equal(t, owner.ID, sent.SenderID)
	assert.Equal(t, invitee.ID, sent.RecipientID)
	assert.Equal(t, NotificationTypeProjectInvite, sent.Type)
	assert.Equal(t, project.ID, *sent.ReferenceID)

	access, err := env.resolver.ResolveAccess("team-project", invitee)
	require.NoError(t, err)
	require.NotNil(t, access)
	assert.Equal(t, projects_enums.AccessLevelMember, access.AccessLevel)
}

func Test_AddMember_WhenAlreadyActive_ReturnsConflict(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	invitee := users_testing.NewTestUser("invitee")
	env.users.Add(invitee)
	project := env.store.AddProject(owner.ID, "team-project", false)
	env.store.AddMember(project.ID, invitee.ID, nil, true)

	_, err := env.team.AddMember("team-project", &projects_dto.AddTeamMemberRequestDTO{UserID: invitee.ID}, owner)

	assert.ErrorIs(t, err, ErrMemberAlreadyActive)
}

func Test_AddMember_WhenPreviouslyRemoved_ReactivatesSameRow(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	invitee := users_testing.NewTestUser("invitee")
	env.users.Add(invitee)
	project := env.store.AddProject(owner.ID, "team-project", false)
	former := env.store.AddMember(project.ID, invitee.ID, nil, false)

	member, err := env.team.AddMember("team-project", &projects_dto.AddTeamMemberRequestDTO{UserID: invitee.ID}, owner)
	require.NoError(t, err)

	assert.Equal(t, former.ID, member.ID)
	assert.Len(t, env.store.Members, 1)
	assert.True(t, env.store.Members[former.ID].IsActive)
}

func Test_AddMember_WithOwnerAsTarget_ReturnsOwnerIsNotMember(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	env.users.Add(owner)
	env.store.AddProject(owner.ID, "team-project", false)

	_, err := env.team.AddMember("team-project", &projects_dto.AddTeamMemberRequestDTO{UserID: owner.ID}, owner)

	assert.ErrorIs(t, err, ErrOwnerIsNotMember)
}

func Test_AddMember_WithOwnerPermission_ReturnsValidationError(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	invitee := users_testing.NewTestUser("invitee")
	env.users.Add(invitee)
	env.store.AddProject(owner.ID, "team-project", false)

	_, err := env.team.AddMember("team-project", &projects_dto.AddTeamMemberRequestDTO{
		UserID:     invitee.ID,
		Permission: projects_enums.TeamPermissionOwner,
	}, owner)

	var validationErr *validation.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "permission", validationErr.Field)
}

func Test_AddMember_WithRoleFromAnotherProject_ReturnsRoleNotFound(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	invitee := users_testing.NewTestUser("invitee")
	env.users.Add(invitee)
	env.store.AddProject(owner.ID, "team-project", false)
	other := env.store.AddProject(owner.ID, "other-project", false)
	foreignRole := env.store.AddRole(other.ID, "Admin", projects_permissions.FullAccess(), false)

	_, err := env.team.AddMember("team-project", &projects_dto.AddTeamMemberRequestDTO{
		UserID: invitee.ID,
		RoleID: &foreignRole.ID,
	}, owner)

	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func Test_AddMember_WithUnknownUser_ReturnsUserNotFound(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	env.store.AddProject(owner.ID, "team-project", false)

	_, err := env.team.AddMember("team-project", &projects_dto.AddTeamMemberRequestDTO{UserID: uuid.New()}, owner)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func Test_AddMember_AsMemberWithoutCreatePermission_ReturnsInsufficientPermissions(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	member := users_testing.NewTestUser("member")
	invitee := users_testing.NewTestUser("invitee")
	env.users.Add(invitee)
	project := env.store.AddProject(owner.ID, "team-project", false)
	env.store.AddMember(project.ID, member.ID, nil, true)

	_, err := env.team.AddMember("team-project", &projects_dto.AddTeamMemberRequestDTO{UserID: invitee.ID}, member)

	assert.ErrorIs(t, err, ErrInsufficientPermissions)
	assert.Empty(t, env.notifications.Sent)
}

func Test_RemoveMember_DeactivatesAndRevokesAccess(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	member := users_testing.NewTestUser("member")
	project := env.store.AddProject(owner.ID, "team-project", false)
	row := env.store.AddMember(project.ID, member.ID, nil, true)

	require.NoError(t, env.team.RemoveMember("team-project", member.ID, owner))

	assert.False(t, env.store.Members[row.ID].IsActive)

	access, err := env.resolver.ResolveAccess("team-project", member)
	require.NoError(t, err)
	assert.Nil(t, access)

	assert.ErrorIs(t, env.team.RemoveMember("team-project", member.ID, owner), ErrMemberNotFound)
}

func Test_UpdateMember_ChangesRole(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	member := users_testing.NewTestUser("member")
	project := env.store.AddProject(owner.ID, "team-project", false)
	admin := env.store.AddRole(project.ID, "Admin", projects_permissions.FullAccess(), false)
	env.store.AddMember(project.ID, member.ID, nil, true)

	updated, err := env.team.UpdateMember("team-project", member.ID, &projects_dto.UpdateTeamMemberRequestDTO{
		RoleID:     &admin.ID,
		Permission: projects_enums.TeamPermissionAdmin,
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, *updated.RoleID)

	access, err := env.resolver.ResolveAccess("team-project", member)
	require.NoError(t, err)
	assert.True(t, access.Can(projects_permissions.ResourceSettings, projects_permissions.ActionUpdate))
}

func memberManagerMatrix() projects_permissions.Matrix {
	matrix := projects_permissions.ReadOnly()
	matrix[projects_permissions.ResourceMembers][projects_permissions.ActionCreate] = true
	matrix[projects_permissions.ResourceMembers][projects_permissions.ActionUpdate] = true

	return matrix
}

func Test_UpdateMember_PromotingSelfBeyondOwnPermissions_IsRejected(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	manager := users_testing.NewTestUser("manager")
	project := env.store.AddProject(owner.ID, "team-project", false)
	managerRole := env.store.AddRole(project.ID, "Manager", memberManagerMatrix(), false)
	admin := env.store.AddRole(project.ID, RoleNameAdmin, projects_permissions.FullAccess(), false)
	row := env.store.AddMember(project.ID, manager.ID, &managerRole.ID, true)

	_, err := env.team.UpdateMember("team-project", manager.ID, &projects_dto.UpdateTeamMemberRequestDTO{
		RoleID: &admin.ID,
	}, manager)

	assert.ErrorIs(t, err, ErrRoleExceedsPermissions)
	assert.Equal(t, managerRole.ID, *env.store.Members[row.ID].RoleID)
}

func Test_UpdateMember_AssigningRoleWithinOwnPermissions_Succeeds(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	manager := users_testing.NewTestUser("manager")
	member := users_testing.NewTestUser("member")
	project := env.store.AddProject(owner.ID, "team-project", false)
	managerRole := env.store.AddRole(project.ID, "Manager", memberManagerMatrix(), false)
	viewer := env.store.AddRole(project.ID, RoleNameViewer, projects_permissions.ReadOnly(), false)
	env.store.AddMember(project.ID, manager.ID, &managerRole.ID, true)
	env.store.AddMember(project.ID, member.ID, nil, true)

	updated, err := env.team.UpdateMember("team-project", member.ID, &projects_dto.UpdateTeamMemberRequestDTO{
		RoleID: &viewer.ID,
	}, manager)
	require.NoError(t, err)

	assert.Equal(t, viewer.ID, *updated.RoleID)
}

func Test_AddMember_WithRoleBeyondOwnPermissions_IsRejected(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	manager := users_testing.NewTestUser("manager")
	invitee := users_testing.NewTestUser("invitee")
	env.users.Add(invitee)
	project := env.store.AddProject(owner.ID, "team-project", false)
	managerRole := env.store.AddRole(project.ID, "Manager", memberManagerMatrix(), false)
	admin := env.store.AddRole(project.ID, RoleNameAdmin, projects_permissions.FullAccess(), false)
	env.store.AddMember(project.ID, manager.ID, &managerRole.ID, true)

	_, err := env.team.AddMember("team-project", &projects_dto.AddTeamMemberRequestDTO{
		UserID: invitee.ID,
		RoleID: &admin.ID,
	}, manager)

	assert.ErrorIs(t, err, ErrRoleExceedsPermissions)
	assert.Empty(t, env.notifications.Sent)
}

func Test_LeaveProject_AsOwner_ReturnsOwnerIsNotMember(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	env.store.AddProject(owner.ID, "team-project", false)

	assert.ErrorIs(t, env.team.LeaveProject("team-project", owner), ErrOwnerIsNotMember)
}

func Test_LeaveProject_AsMember_Deactivates(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	member := users_testing.NewTestUser("member")
	project := env.store.AddProject(owner.ID, "team-project", false)
	row := env.store.AddMember(project.ID, member.ID, nil, true)

	require.NoError(t, env.team.LeaveProject("team-project", member))

	assert.False(t, env.store.Members[row.ID].IsActive)
}

func Test_ListMembers_ReturnsOnlyActiveMembers(t *testing.T) {
	env := newTestEnv(testNow)
	owner := users_testing.NewTestUser("owner")
	project := env.store.AddProject(owner.ID, "team-project", true)
	active := users_testing.NewTestUser("active")
	env.store.Usernames[active.ID] = active.Username
	env.store.AddMember(project.ID, active.ID, nil, true)
	env.store.AddMember(project.ID, users_testing.NewTestUser("gone").ID, nil, false)

	response, err := env.team.ListMembers("team-project", owner)
	require.NoError(t, err)

	require.Len(t, response.Members, 1)
	assert.Equal(t, "active", response.Members[0].Username)
}
