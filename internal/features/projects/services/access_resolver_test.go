package projects_services

import (
	"errors"
	"testing"
	"time"

	projects_enums "matchme/internal/features/projects/enums"
	projects_permissions "matchme/internal/features/projects/permissions"
	users_testing "matchme/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEveryAction(t *testing.T, matrix projects_permissions.Matrix, expected func(projects_permissions.Action) bool) {
	t.Helper()

	for _, resource := range projects_permissions.AllResources {
		for _, action := range projects_permissions.AllActions {
			assert.Equal(t, expected(action), matrix.Allows(resource, action), "%s:%s", resource, action)
		}
	}
}

func Test_ResolveAccess_AsOwner_ReturnsFullAccessRegardlessOfRoles(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	project := env.store.AddProject(owner.ID, "private-one", false)

	// a restrictive default role and even an owner member row must not matter
	role := env.store.AddRole(project.ID, "Nobody", projects_permissions.Matrix{}, true)
	env.store.AddMember(project.ID, owner.ID, &role.ID, true)

	access, err := env.resolver.ResolveAccess("private-one", owner)
	require.NoError(t, err)
	require.NotNil(t, access)

	assert.Equal(t, projects_enums.AccessLevelOwner, access.AccessLevel)
	assertEveryAction(t, access.Permissions, func(projects_permissions.Action) bool { return true })
}

func Test_ResolveAccess_AsStrangerOnPrivateProject_ReturnsNil(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	stranger := users_testing.NewTestUser("stranger")
	env.store.AddProject(owner.ID, "private-one", false)

	access, err := env.resolver.ResolveAccess("private-one", stranger)
	assert.NoError(t, err)
	assert.Nil(t, access)
}

func Test_ResolveAccess_AsInactiveMemberOnPrivateProject_ReturnsNil(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	former := users_testing.NewTestUser("former")
	project := env.store.AddProject(owner.ID, "private-one", false)
	role := env.store.AddRole(project.ID, "Admin", projects_permissions.FullAccess(), false)
	env.store.AddMember(project.ID, former.ID, &role.ID, false)

	access, err := env.resolver.ResolveAccess("private-one", former)
	assert.NoError(t, err)
	assert.Nil(t, access)
}

func Test_ResolveAccess_WithUnknownSlug_ReturnsNil(t *testing.T) {
	env := newTestEnv(time.Now())

	access, err := env.resolver.ResolveAccess("does-not-exist", users_testing.NewTestUser("someone"))
	assert.NoError(t, err)
	assert.Nil(t, access)
}

func Test_ResolveAccess_AsMemberWithRole_ReturnsRoleMatrix(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	member := users_testing.NewTestUser("member")
	project := env.store.AddProject(owner.ID, "team-project", false)

	matrix := projects_permissions.ReadOnly()
	matrix[projects_permissions.ResourceMembers][projects_permissions.ActionCreate] = true
	role := env.store.AddRole(project.ID, "Recruiter", matrix, false)
	env.store.AddRole(project.ID, "Default", projects_permissions.ReadOnly(), true)
	env.store.AddMember(project.ID, member.ID, &role.ID, true)

	access, err := env.resolver.ResolveAccess("team-project", member)
	require.NoError(t, err)
	require.NotNil(t, access)

	assert.Equal(t, projects_enums.AccessLevelMember, access.AccessLevel)
	assert.True(t, access.Can(projects_permissions.ResourceMembers, projects_permissions.ActionCreate))
	assert.False(t, access.Can(projects_permissions.ResourceSettings, projects_permissions.ActionUpdate))
}

func Test_ResolveAccess_AsMemberWithoutRole_UsesDefaultRole(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	member := users_testing.NewTestUser("member")
	project := env.store.AddProject(owner.ID, "team-project", false)

	defaultMatrix := projects_permissions.Matrix{
		projects_permissions.ResourceAnalytics: {projects_permissions.ActionView: true},
	}
	env.store.AddRole(project.ID, "Default", defaultMatrix, true)
	env.store.AddMember(project.ID, member.ID, nil, true)

	access, err := env.resolver.ResolveAccess("team-project", member)
	require.NoError(t, err)
	require.NotNil(t, access)

	assert.True(t, access.Can(projects_permissions.ResourceAnalytics, projects_permissions.ActionView))
	assert.False(t, access.Can(projects_permissions.ResourceMembers, projects_permissions.ActionView))
}

func Test_ResolveAccess_AsMemberWithDeletedRole_FallsBackToDefaultRole(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	member := users_testing.NewTestUser("member")
	project := env.store.AddProject(owner.ID, "team-project", false)
	env.store.AddRole(project.ID, "Default", projects_permissions.ReadOnly(), true)

	missingRoleID := uuid.New()
	env.store.AddMember(project.ID, member.ID, &missingRoleID, true)

	access, err := env.resolver.ResolveAccess("team-project", member)
	require.NoError(t, err)
	require.NotNil(t, access)
	assertEveryAction(t, access.Permissions, func(a projects_permissions.Action) bool {
		return a == projects_permissions.ActionView
	})
}

func Test_ResolveAccess_AsMemberWithoutAnyRole_ReturnsReadOnly(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	member := users_testing.NewTestUser("member")
	project := env.store.AddProject(owner.ID, "team-project", false)
	env.store.AddMember(project.ID, member.ID, nil, true)

	access, err := env.resolver.ResolveAccess("team-project", member)
	require.NoError(t, err)
	require.NotNil(t, access)
	assertEveryAction(t, access.Permissions, func(a projects_permissions.Action) bool {
		return a == projects_permissions.ActionView
	})
}

func Test_ResolveAccess_AnonymousOnPublicProject_ReturnsReadOnly(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	env.store.AddProject(owner.ID, "open-source", true)

	access, err := env.resolver.ResolveAccess("open-source", nil)
	require.NoError(t, err)
	require.NotNil(t, access)

	assert.Equal(t, projects_enums.AccessLevelPublic, access.AccessLevel)
	assertEveryAction(t, access.Permissions, func(a projects_permissions.Action) bool {
		return a == projects_permissions.ActionView
	})
}

func Test_ResolveAccess_AnonymousOnPrivateProject_ReturnsNil(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	env.store.AddProject(owner.ID, "private-one", false)

	access, err := env.resolver.ResolveAccess("private-one", nil)
	assert.NoError(t, err)
	assert.Nil(t, access)
}

func Test_ResolveAccess_WithMixedCaseSlug_FindsProject(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	env.store.AddProject(owner.ID, "my-project", false)

	access, err := env.resolver.ResolveAccess("  My-Project ", owner)
	require.NoError(t, err)
	assert.NotNil(t, access)
}

func Test_ResolveAccess_WhenBackendFails_ReturnsResolutionFailure(t *testing.T) {
	env := newTestEnv(time.Now())
	env.store.Err = errors.New("connection reset")

	access, err := env.resolver.ResolveAccess("anything", users_testing.NewTestUser("someone"))
	assert.Nil(t, access)
	assert.True(t, errors.Is(err, ErrAccessResolutionFailed))
}

func Test_ResolveAccess_WhenMemberLookupFails_ReturnsResolutionFailure(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	env.store.AddProject(owner.ID, "private-one", false)

	// warm the cache so only the membership lookup hits the failing store
	_, err := env.resolver.GetProjectBySlug("private-one")
	require.NoError(t, err)
	env.store.Err = errors.New("connection reset")

	access, err := env.resolver.ResolveAccess("private-one", users_testing.NewTestUser("someone"))
	assert.Nil(t, access)
	assert.True(t, errors.Is(err, ErrAccessResolutionFailed))
}

func Test_GetProjectBySlug_CachesHitsAndMisses(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	env.store.AddProject(owner.ID, "cached", false)

	for i := 0; i < 3; i++ {
		project, err := env.resolver.GetProjectBySlug("cached")
		require.NoError(t, err)
		require.NotNil(t, project)

		missing, err := env.resolver.GetProjectBySlug("missing")
		require.NoError(t, err)
		assert.Nil(t, missing)
	}

	assert.Equal(t, 2, env.store.SlugLookups)
}

func Test_InvalidateSlugs_ForcesReload(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")

	missing, err := env.resolver.GetProjectBySlug("later")
	require.NoError(t, err)
	assert.Nil(t, missing)

	env.store.AddProject(owner.ID, "later", false)
	env.resolver.InvalidateSlugs("Later")

	project, err := env.resolver.GetProjectBySlug("later")
	require.NoError(t, err)
	assert.NotNil(t, project)
}

func Test_Require_WithoutPermission_ReturnsInsufficientPermissions(t *testing.T) {
	env := newTestEnv(time.Now())
	owner := users_testing.NewTestUser("owner")
	viewer := users_testing.NewTestUser("viewer")
	env.store.AddProject(owner.ID, "public-one", true)

	_, err := env.resolver.Require(
		"public-one", viewer, projects_permissions.ResourceSettings, projects_permissions.ActionUpdate,
	)
	assert.True(t, errors.Is(err, ErrInsufficientPermissions))

	_, err = env.resolver.Require(
		"missing", viewer, projects_permissions.ResourceSettings, projects_permissions.ActionView,
	)
	assert.True(t, errors.Is(err, ErrProjectNotFound))
}
