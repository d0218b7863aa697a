package projects_testing

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	projects_dto "matchme/internal/features/projects/dto"
	projects_models "matchme/internal/features/projects/models"
	projects_permissions "matchme/internal/features/projects/permissions"

	"github.com/google/uuid"
)

// Store is an in-memory implementation of every projects store interface.
// Set Err to make every call fail.
type Store struct {
	mu        sync.Mutex
	Projects  map[uuid.UUID]*projects_models.Project
	Roles     map[uuid.UUID]*projects_models.ProjectRole
	Members   map[uuid.UUID]*projects_models.ProjectTeamMember
	Favorites map[uuid.UUID]map[uuid.UUID]time.Time
	Usernames map[uuid.UUID]string
	Err       error

	SlugLookups int
}

func NewStore() *Store {
	return &Store{
		Projects:  map[uuid.UUID]*projects_models.Project{},
		Roles:     map[uuid.UUID]*projects_models.ProjectRole{},
		Members:   map[uuid.UUID]*projects_models.ProjectTeamMember{},
		Favorites: map[uuid.UUID]map[uuid.UUID]time.Time{},
		Usernames: map[uuid.UUID]string{},
	}
}

func copyProject(project *projects_models.Project) *projects_models.Project {
	copied := *project
	return &copied
}

// ProjectStore

func (s *Store) CreateProject(project *projects_models.Project, roles []*projects_models.ProjectRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	s.Projects[project.ID] = copyProject(project)

	for _, role := range roles {
		role.ProjectID = project.ID
		if role.ID == uuid.Nil {
			role.ID = uuid.New()
		}
		s.Roles[role.ID] = role
	}

	return nil
}

func (s *Store) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	project, ok := s.Projects[projectID]
	if !ok {
		return nil, nil
	}

	return copyProject(project), nil
}

func (s *Store) GetProjectBySlug(slug string) (*projects_models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SlugLookups++

	if s.Err != nil {
		return nil, s.Err
	}

	for _, project := range s.Projects {
		if strings.EqualFold(project.Slug, strings.TrimSpace(slug)) {
			return copyProject(project), nil
		}
	}

	return nil, nil
}

func (s *Store) IsSlugTaken(slug string) (bool, error) {
	project, err := s.GetProjectBySlug(slug)
	return project != nil, err
}

func (s *Store) UpdateProject(project *projects_models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	existing, ok := s.Projects[project.ID]
	if !ok {
		return errors.New("project not found")
	}

	existing.Name = project.Name
	existing.Description = project.Description
	existing.IsPublic = project.IsPublic

	return nil
}

func (s *Store) UpdateSlug(projectID uuid.UUID, slug string, changedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	existing, ok := s.Projects[projectID]
	if !ok {
		return errors.New("project not found")
	}

	existing.Slug = slug
	existing.SlugChangedAt = &changedAt

	return nil
}

func (s *Store) DeleteProject(projectID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	delete(s.Projects, projectID)

	for id, role := range s.Roles {
		if role.ProjectID == projectID {
			delete(s.Roles, id)
		}
	}

	for id, member := range s.Members {
		if member.ProjectID == projectID {
			delete(s.Members, id)
		}
	}

	for _, favorites := range s.Favorites {
		delete(favorites, projectID)
	}

	return nil
}

func (s *Store) GetProjectsForUser(userID uuid.UUID) ([]*projects_dto.ProjectListItemDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	items := make([]*projects_dto.ProjectListItemDTO, 0)
	for _, project := range s.Projects {
		item := &projects_dto.ProjectListItemDTO{
			ID:        project.ID,
			Name:      project.Name,
			Slug:      project.Slug,
			IsPublic:  project.IsPublic,
			CreatedAt: project.CreatedAt,
		}

		if project.UserID == userID {
			item.IsOwner = true
			items = append(items, item)
			continue
		}

		for _, member := range s.Members {
			if member.ProjectID == project.ID && member.UserID == userID && member.IsActive {
				if member.RoleID != nil {
					if role, ok := s.Roles[*member.RoleID]; ok {
						name := role.Name
						item.RoleName = &name
					}
				}
				items = append(items, item)
				break
			}
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	return items, nil
}

// RoleStore

func (s *Store) GetRoleByID(projectID, roleID uuid.UUID) (*projects_models.ProjectRole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	role, ok := s.Roles[roleID]
	if !ok || role.ProjectID != projectID {
		return nil, nil
	}

	copied := *role
	return &copied, nil
}

func (s *Store) GetDefaultRole(projectID uuid.UUID) (*projects_models.ProjectRole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	for _, role := range s.Roles {
		if role.ProjectID == projectID && role.IsDefault {
			copied := *role
			return &copied, nil
		}
	}

	return nil, nil
}

func (s *Store) GetRolesByProject(projectID uuid.UUID) ([]*projects_models.ProjectRole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	roles := make([]*projects_models.ProjectRole, 0)
	for _, role := range s.Roles {
		if role.ProjectID == projectID {
			copied := *role
			roles = append(roles, &copied)
		}
	}

	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })

	return roles, nil
}

func (s *Store) CreateRole(role *projects_models.ProjectRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	copied := *role
	s.Roles[role.ID] = &copied

	return nil
}

func (s *Store) UpdateRole(role *projects_models.ProjectRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	existing, ok := s.Roles[role.ID]
	if !ok {
		return errors.New("role not found")
	}

	existing.Name = role.Name
	existing.BadgeColor = role.BadgeColor
	existing.Permissions = role.Permissions

	return nil
}

func (s *Store) DeleteRole(projectID, roleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	for _, member := range s.Members {
		if member.ProjectID == projectID && member.RoleID != nil && *member.RoleID == roleID {
			member.RoleID = nil
		}
	}

	delete(s.Roles, roleID)

	return nil
}

func (s *Store) SetDefaultRole(projectID, roleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	target, ok := s.Roles[roleID]
	if !ok || target.ProjectID != projectID {
		return errors.New("role not found")
	}

	for _, role := range s.Roles {
		if role.ProjectID == projectID {
			role.IsDefault = role.ID == roleID
		}
	}

	return nil
}

// TeamMemberStore

func (s *Store) GetActiveMember(projectID, userID uuid.UUID) (*projects_models.ProjectTeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	for _, member := range s.Members {
		if member.ProjectID == projectID && member.UserID == userID && member.IsActive {
			copied := *member
			return &copied, nil
		}
	}

	return nil, nil
}

func (s *Store) GetMember(projectID, userID uuid.UUID) (*projects_models.ProjectTeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	var found *projects_models.ProjectTeamMember
	for _, member := range s.Members {
		if member.ProjectID == projectID && member.UserID == userID {
			if found == nil || member.IsActive {
				found = member
			}
		}
	}

	if found == nil {
		return nil, nil
	}

	copied := *found
	return &copied, nil
}

func (s *Store) GetMembersByProject(projectID uuid.UUID) ([]*projects_models.ProjectTeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	members := make([]*projects_models.ProjectTeamMember, 0)
	for _, member := range s.Members {
		if member.ProjectID == projectID {
			copied := *member
			members = append(members, &copied)
		}
	}

	return members, nil
}

func (s *Store) GetActiveMembersWithProfiles(projectID uuid.UUID) ([]*projects_dto.TeamMemberResponseDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	result := make([]*projects_dto.TeamMemberResponseDTO, 0)
	for _, member := range s.Members {
		if member.ProjectID != projectID || !member.IsActive {
			continue
		}

		dto := &projects_dto.TeamMemberResponseDTO{
			ID:          member.ID,
			UserID:      member.UserID,
			Username:    s.Usernames[member.UserID],
			DisplayName: s.Usernames[member.UserID],
			RoleID:      member.RoleID,
			Permission:  member.Permission,
			JoinedDate:  member.JoinedDate,
		}
		if member.RoleID != nil {
			if role, ok := s.Roles[*member.RoleID]; ok {
				name := role.Name
				dto.RoleName = &name
			}
		}

		result = append(result, dto)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].JoinedDate.Before(result[j].JoinedDate) })

	return result, nil
}

func (s *Store) CreateMember(member *projects_models.ProjectTeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	copied := *member
	s.Members[member.ID] = &copied

	return nil
}

func (s *Store) UpdateMember(member *projects_models.ProjectTeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.Members[member.ID]; !ok {
		return errors.New("member not found")
	}

	copied := *member
	s.Members[member.ID] = &copied

	return nil
}

// FavoriteStore

func (s *Store) AddFavorite(userID, projectID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}

	if s.Favorites[userID] == nil {
		s.Favorites[userID] = map[uuid.UUID]time.Time{}
	}

	if _, ok := s.Favorites[userID][projectID]; ok {
		return false, nil
	}

	s.Favorites[userID][projectID] = time.Now()

	return true, nil
}

func (s *Store) RemoveFavorite(userID, projectID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	delete(s.Favorites[userID], projectID)

	return nil
}

func (s *Store) IsFavorite(userID, projectID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}

	_, ok := s.Favorites[userID][projectID]

	return ok, nil
}

func (s *Store) GetFavoriteProjects(userID uuid.UUID) ([]*projects_models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	projects := make([]*projects_models.Project, 0)
	for projectID := range s.Favorites[userID] {
		if project, ok := s.Projects[projectID]; ok {
			projects = append(projects, copyProject(project))
		}
	}

	return projects, nil
}

// Seeding helpers

func (s *Store) AddProject(ownerID uuid.UUID, slug string, isPublic bool) *projects_models.Project {
	project := &projects_models.Project{
		ID:        uuid.New(),
		UserID:    ownerID,
		Name:      slug,
		Slug:      slug,
		IsPublic:  isPublic,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.Projects[project.ID] = copyProject(project)
	s.mu.Unlock()

	return project
}

func (s *Store) AddRole(
	projectID uuid.UUID,
	name string,
	matrix projects_permissions.Matrix,
	isDefault bool,
) *projects_models.ProjectRole {
	role := &projects_models.ProjectRole{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      name,
		IsDefault: isDefault,
		CreatedAt: time.Now().UTC(),
	}
	role.SetMatrix(matrix)

	s.mu.Lock()
	s.Roles[role.ID] = role
	s.mu.Unlock()

	return role
}

func (s *Store) AddMember(
	projectID, userID uuid.UUID,
	roleID *uuid.UUID,
	isActive bool,
) *projects_models.ProjectTeamMember {
	member := &projects_models.ProjectTeamMember{
		ID:         uuid.New(),
		ProjectID:  projectID,
		UserID:     userID,
		RoleID:     roleID,
		Permission: "member",
		IsActive:   isActive,
		JoinedDate: time.Now().UTC(),
	}

	s.mu.Lock()
	s.Members[member.ID] = member
	s.mu.Unlock()

	return member
}
