package projects_services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	projects_dto "matchme/internal/features/projects/dto"
	projects_interfaces "matchme/internal/features/projects/interfaces"
	projects_models "matchme/internal/features/projects/models"
	projects_permissions "matchme/internal/features/projects/permissions"
	users_models "matchme/internal/features/users/models"
	"matchme/internal/util/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleService struct {
	roleRepository projects_interfaces.RoleStore
	accessResolver *AccessResolver
	auditLogWriter projects_interfaces.AuditLogWriter
}

func NewRoleService(
	roleRepository projects_interfaces.RoleStore,
	accessResolver *AccessResolver,
	auditLogWriter projects_interfaces.AuditLogWriter,
) *RoleService {
	return &RoleService{
		roleRepository: roleRepository,
		accessResolver: accessResolver,
		auditLogWriter: auditLogWriter,
	}
}

func (s *RoleService) ListRoles(slug string, user *users_models.User) (*projects_dto.ListRolesResponseDTO, error) {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceRoles, projects_permissions.ActionView,
	)
	if err != nil {
		return nil, err
	}

	roles, err := s.roleRepository.GetRolesByProject(access.Project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}

	response := &projects_dto.ListRolesResponseDTO{
		Roles: make([]*projects_dto.RoleResponseDTO, 0, len(roles)),
	}
	for _, role := range roles {
		response.Roles = append(response.Roles, toRoleResponse(role))
	}

	return response, nil
}

func (s *RoleService) CreateRole(
	slug string,
	request *projects_dto.RoleRequestDTO,
	user *users_models.User,
) (*projects_dto.RoleResponseDTO, error) {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceRoles, projects_permissions.ActionCreate,
	)
	if err != nil {
		return nil, err
	}

	matrix, err := parsePermissions(request)
	if err != nil {
		return nil, err
	}

	if !access.IsOwner() && !access.Permissions.Covers(matrix) {
		return nil, ErrRoleExceedsPermissions
	}

	role := &projects_models.ProjectRole{
		ID:         uuid.New(),
		ProjectID:  access.Project.ID,
		Name:       strings.TrimSpace(request.Name),
		BadgeColor: request.BadgeColor,
		CreatedAt:  time.Now().UTC(),
	}
	role.SetMatrix(matrix)

	if err := s.roleRepository.CreateRole(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Role created: %s", role.Name),
		&user.ID,
		&access.Project.ID,
	)

	return toRoleResponse(role), nil
}

func (s *RoleService) UpdateRole(
	slug string,
	roleID uuid.UUID,
	request *projects_dto.RoleRequestDTO,
	user *users_models.User,
) (*projects_dto.RoleResponseDTO, error) {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceRoles, projects_permissions.ActionUpdate,
	)
	if err != nil {
		return nil, err
	}

	role, err := s.getRole(access.Project.ID, roleID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Name)
	if role.IsSystemRole && name != role.Name {
		return nil, ErrSystemRoleProtected
	}

	matrix, err := parsePermissions(request)
	if err != nil {
		return nil, err
	}

	if !access.IsOwner() && !access.Permissions.Covers(matrix) {
		return nil, ErrRoleExceedsPermissions
	}

	role.Name = name
	role.BadgeColor = request.BadgeColor
	role.SetMatrix(matrix)

	if err := s.roleRepository.UpdateRole(role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Role updated: %s", role.Name),
		&user.ID,
		&access.Project.ID,
	)

	return toRoleResponse(role), nil
}

func (s *RoleService) DeleteRole(slug string, roleID uuid.UUID, user *users_models.User) error {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceRoles, projects_permissions.ActionDelete,
	)
	if err != nil {
		return err
	}

	role, err := s.getRole(access.Project.ID, roleID)
	if err != nil {
		return err
	}

	if role.IsSystemRole {
		return ErrSystemRoleProtected
	}
	if role.IsDefault {
		return ErrDefaultRoleProtected
	}

	if err := s.roleRepository.DeleteRole(access.Project.ID, roleID); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Role deleted: %s", role.Name),
		&user.ID,
		&access.Project.ID,
	)

	return nil
}

func (s *RoleService) SetDefaultRole(slug string, roleID uuid.UUID, user *users_models.User) error {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceRoles, projects_permissions.ActionUpdate,
	)
	if err != nil {
		return err
	}

	role, err := s.getRole(access.Project.ID, roleID)
	if err != nil {
		return err
	}

	if err := s.roleRepository.SetDefaultRole(access.Project.ID, roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return fmt.Errorf("failed to set default role: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Default role set: %s", role.Name),
		&user.ID,
		&access.Project.ID,
	)

	return nil
}

func (s *RoleService) getRole(projectID, roleID uuid.UUID) (*projects_models.ProjectRole, error) {
	role, err := s.roleRepository.GetRoleByID(projectID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	return role, nil
}

func parsePermissions(request *projects_dto.RoleRequestDTO) (projects_permissions.Matrix, error) {
	if strings.TrimSpace(request.Name) == "" {
		return nil, validation.NewValidationError(validation.ErrorRequired, "name", "role name is required")
	}

	matrix, err := projects_permissions.ParseMatrix(request.Permissions)
	if err != nil {
		return nil, validation.NewValidationError(validation.ErrorInvalidValue, "permissions", err.Error())
	}

	return matrix, nil
}

func toRoleResponse(role *projects_models.ProjectRole) *projects_dto.RoleResponseDTO {
	return &projects_dto.RoleResponseDTO{
		ID:           role.ID,
		Name:         role.Name,
		BadgeColor:   role.BadgeColor,
		IsDefault:    role.IsDefault,
		IsSystemRole: role.IsSystemRole,
		Permissions:  role.Matrix(),
		CreatedAt:    role.CreatedAt,
	}
}
