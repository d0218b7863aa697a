package projects_services

import (
	"fmt"
	"log/slog"

	projects_enums "matchme/internal/features/projects/enums"
	projects_interfaces "matchme/internal/features/projects/interfaces"
	projects_models "matchme/internal/features/projects/models"
	projects_permissions "matchme/internal/features/projects/permissions"
	users_models "matchme/internal/features/users/models"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// AccessResult is the effective view a user has on a project. It is computed
// per request and never persisted.
type AccessResult struct {
	Project     *projects_models.Project    `json:"project"`
	Permissions projects_permissions.Matrix `json:"permissions"`
	AccessLevel projects_enums.AccessLevel  `json:"accessLevel"`
}

func (r *AccessResult) Can(resource projects_permissions.Resource, action projects_permissions.Action) bool {
	if r == nil {
		return false
	}

	return r.Permissions.Allows(resource, action)
}

func (r *AccessResult) IsOwner() bool {
	return r != nil && r.AccessLevel == projects_enums.AccessLevelOwner
}

type AccessResolver struct {
	projectRepository    projects_interfaces.ProjectStore
	roleRepository       projects_interfaces.RoleStore
	teamMemberRepository projects_interfaces.TeamMemberStore
	projectCache         projects_interfaces.ProjectCache
	singleflight         singleflight.Group // Prevents thundering herd on DB calls
	logger               *slog.Logger
}

func NewAccessResolver(
	projectRepository projects_interfaces.ProjectStore,
	roleRepository projects_interfaces.RoleStore,
	teamMemberRepository projects_interfaces.TeamMemberStore,
	projectCache projects_interfaces.ProjectCache,
	logger *slog.Logger,
) *AccessResolver {
	return &AccessResolver{
		projectRepository:    projectRepository,
		roleRepository:       roleRepository,
		teamMemberRepository: teamMemberRepository,
		projectCache:         projectCache,
		logger:               logger,
	}
}

// ResolveAccess returns nil without error both when the project does not exist
// and when user may not see it. user may be nil for anonymous requests.
// Backend failures wrap ErrAccessResolutionFailed.
func (r *AccessResolver) ResolveAccess(slug string, user *users_models.User) (*AccessResult, error) {
	project, err := r.GetProjectBySlug(slug)
	if err != nil {
		r.logger.Error("failed to load project", slog.String("slug", slug), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrAccessResolutionFailed, err)
	}

	return r.ResolveForProject(project, user)
}

func (r *AccessResolver) ResolveAccessByID(projectID uuid.UUID, user *users_models.User) (*AccessResult, error) {
	project, err := r.projectRepository.GetProjectByID(projectID)
	if err != nil {
		r.logger.Error("failed to load project", slog.String("projectId", projectID.String()), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrAccessResolutionFailed, err)
	}

	return r.ResolveForProject(project, user)
}

// ResolveForProject applies the access decision to an already loaded project.
func (r *AccessResolver) ResolveForProject(
	project *projects_models.Project,
	user *users_models.User,
) (*AccessResult, error) {
	if project == nil {
		return nil, nil
	}

	if user != nil {
		if project.IsOwnedBy(user.ID) {
			return &AccessResult{
				Project:     project,
				Permissions: projects_permissions.FullAccess(),
				AccessLevel: projects_enums.AccessLevelOwner,
			}, nil
		}

		member, err := r.teamMemberRepository.GetActiveMember(project.ID, user.ID)
		if err != nil {
			r.logger.Error("failed to load team member", slog.String("projectId", project.ID.String()), "error", err)
			return nil, fmt.Errorf("%w: failed to get team member: %w", ErrAccessResolutionFailed, err)
		}

		if member != nil {
			matrix, err := r.memberMatrix(project.ID, member)
			if err != nil {
				r.logger.Error("failed to load member role", slog.String("projectId", project.ID.String()), "error", err)
				return nil, fmt.Errorf("%w: %w", ErrAccessResolutionFailed, err)
			}

			return &AccessResult{
				Project:     project,
				Permissions: matrix,
				AccessLevel: projects_enums.AccessLevelMember,
			}, nil
		}
	}

	if project.IsPublic {
		return &AccessResult{
			Project:     project,
			Permissions: projects_permissions.ReadOnly(),
			AccessLevel: projects_enums.AccessLevelPublic,
		}, nil
	}

	return nil, nil
}

// memberMatrix uses the assigned role, then the project default role, then read-only.
func (r *AccessResolver) memberMatrix(
	projectID uuid.UUID,
	member *projects_models.ProjectTeamMember,
) (projects_permissions.Matrix, error) {
	if member.RoleID != nil {
		role, err := r.roleRepository.GetRoleByID(projectID, *member.RoleID)
		if err != nil {
			return nil, fmt.Errorf("failed to get member role: %w", err)
		}

		if role != nil {
			return role.Matrix(), nil
		}
	}

	defaultRole, err := r.roleRepository.GetDefaultRole(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get default role: %w", err)
	}

	if defaultRole != nil {
		return defaultRole.Matrix(), nil
	}

	return projects_permissions.ReadOnly(), nil
}

// GetProjectBySlug reads through the cache. Missing slugs are cached as
// tombstones so repeated lookups of unknown slugs stay off the database.
func (r *AccessResolver) GetProjectBySlug(slug string) (*projects_models.Project, error) {
	key := NormalizeSlug(slug)

	if cachedProject := r.projectCache.Get(key); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, nil
		}

		return cachedProject, nil
	}

	result, err, _ := r.singleflight.Do(key, func() (any, error) {
		return r.projectRepository.GetProjectBySlug(key)
	})
	if err != nil {
		return nil, err
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	if project == nil {
		r.projectCache.Set(key, &projects_models.Project{Slug: key, IsNotExists: true})
		return nil, nil
	}

	r.projectCache.Set(key, project)

	return project, nil
}

func (r *AccessResolver) InvalidateSlugs(slugs ...string) {
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		keys = append(keys, NormalizeSlug(slug))
	}

	r.projectCache.Invalidate(keys...)
}

// RequireVisible resolves access and turns "nothing" into ErrProjectNotFound.
func (r *AccessResolver) RequireVisible(slug string, user *users_models.User) (*AccessResult, error) {
	access, err := r.ResolveAccess(slug, user)
	if err != nil {
		return nil, err
	}

	if access == nil {
		return nil, ErrProjectNotFound
	}

	return access, nil
}

// Require additionally demands resource/action on the visible project.
func (r *AccessResolver) Require(
	slug string,
	user *users_models.User,
	resource projects_permissions.Resource,
	action projects_permissions.Action,
) (*AccessResult, error) {
	access, err := r.RequireVisible(slug, user)
	if err != nil {
		return nil, err
	}

	if !access.Can(resource, action) {
		return nil, ErrInsufficientPermissions
	}

	return access, nil
}
