package projects_services

import (
	"fmt"
	"log/slog"
	"time"

	projects_dto "matchme/internal/features/projects/dto"
	projects_enums "matchme/internal/features/projects/enums"
	projects_interfaces "matchme/internal/features/projects/interfaces"
	projects_models "matchme/internal/features/projects/models"
	projects_permissions "matchme/internal/features/projects/permissions"
	users_models "matchme/internal/features/users/models"
	"matchme/internal/util/validation"

	"github.com/google/uuid"
)

const NotificationTypeProjectInvite = "project_invite"

type UserLookup interface {
	GetUserByID(userID uuid.UUID) (*users_models.User, error)
}

type TeamService struct {
	teamMemberRepository projects_interfaces.TeamMemberStore
	roleRepository       projects_interfaces.RoleStore
	userLookup           UserLookup
	accessResolver       *AccessResolver
	auditLogWriter       projects_interfaces.AuditLogWriter
	notificationSender   projects_interfaces.NotificationSender
	logger               *slog.Logger
}

func NewTeamService(
	teamMemberRepository projects_interfaces.TeamMemberStore,
	roleRepository projects_interfaces.RoleStore,
	userLookup UserLookup,
	accessResolver *AccessResolver,
	auditLogWriter projects_interfaces.AuditLogWriter,
	logger *slog.Logger,
) *TeamService {
	return &TeamService{
		teamMemberRepository: teamMemberRepository,
		roleRepository:       roleRepository,
		userLookup:           userLookup,
		accessResolver:       accessResolver,
		auditLogWriter:       auditLogWriter,
		logger:               logger,
	}
}

func (s *TeamService) SetNotificationSender(sender projects_interfaces.NotificationSender) {
	s.notificationSender = sender
}

func (s *TeamService) ListMembers(
	slug string,
	user *users_models.User,
) (*projects_dto.ListTeamMembersResponseDTO, error) {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceMembers, projects_permissions.ActionView,
	)
	if err != nil {
		return nil, err
	}

	members, err := s.teamMemberRepository.GetActiveMembersWithProfiles(access.Project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	return &projects_dto.ListTeamMembersResponseDTO{Members: members}, nil
}

// AddMember creates the membership, or reactivates a previously removed one.
func (s *TeamService) AddMember(
	slug string,
	request *projects_dto.AddTeamMemberRequestDTO,
	user *users_models.User,
) (*projects_models.ProjectTeamMember, error) {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceMembers, projects_permissions.ActionCreate,
	)
	if err != nil {
		return nil, err
	}

	project := access.Project

	if project.IsOwnedBy(request.UserID) {
		return nil, ErrOwnerIsNotMember
	}

	permission, err := normalizeTeamPermission(request.Permission)
	if err != nil {
		return nil, err
	}

	if err := s.ensureAssignableRole(access, request.RoleID); err != nil {
		return nil, err
	}

	target, err := s.userLookup.GetUserByID(request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	existing, err := s.teamMemberRepository.GetMember(project.ID, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	if existing != nil && existing.IsActive {
		return nil, ErrMemberAlreadyActive
	}

	var member *projects_models.ProjectTeamMember
	if existing != nil {
		existing.RoleID = request.RoleID
		existing.Permission = permission
		existing.IsActive = true
		existing.JoinedDate = time.Now().UTC()

		if err := s.teamMemberRepository.UpdateMember(existing); err != nil {
			return nil, fmt.Errorf("failed to reactivate team member: %w", err)
		}

		member = existing
	} else {
		member = &projects_models.ProjectTeamMember{
			ID:         uuid.New(),
			ProjectID:  project.ID,
			UserID:     request.UserID,
			RoleID:     request.RoleID,
			Permission: permission,
			IsActive:   true,
			JoinedDate: time.Now().UTC(),
		}

		if err := s.teamMemberRepository.CreateMember(member); err != nil {
			return nil, fmt.Errorf("failed to add team member: %w", err)
		}
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Team member added: %s", target.Username),
		&user.ID,
		&project.ID,
	)

	if s.notificationSender != nil {
		projectID := project.ID
		if err := s.notificationSender.SendNotification(
			user.ID, target.ID, NotificationTypeProjectInvite, &projectID,
		); err != nil {
			s.logger.Warn("failed to send invite notification", slog.String("projectId", project.ID.String()), "error", err)
		}
	}

	return member, nil
}

func (s *TeamService) UpdateMember(
	slug string,
	memberUserID uuid.UUID,
	request *projects_dto.UpdateTeamMemberRequestDTO,
	user *users_models.User,
) (*projects_models.ProjectTeamMember, error) {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceMembers, projects_permissions.ActionUpdate,
	)
	if err != nil {
		return nil, err
	}

	member, err := s.teamMemberRepository.GetActiveMember(access.Project.ID, memberUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	permission, err := normalizeTeamPermission(request.Permission)
	if err != nil {
		return nil, err
	}

	if err := s.ensureAssignableRole(access, request.RoleID); err != nil {
		return nil, err
	}

	member.RoleID = request.RoleID
	member.Permission = permission

	if err := s.teamMemberRepository.UpdateMember(member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Team member updated: %s", memberUserID),
		&user.ID,
		&access.Project.ID,
	)

	return member, nil
}

// RemoveMember deactivates the membership; the row is kept for history.
func (s *TeamService) RemoveMember(slug string, memberUserID uuid.UUID, user *users_models.User) error {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceMembers, projects_permissions.ActionDelete,
	)
	if err != nil {
		return err
	}

	if err := s.deactivate(access.Project.ID, memberUserID); err != nil {
		return err
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Team member removed: %s", memberUserID),
		&user.ID,
		&access.Project.ID,
	)

	return nil
}

func (s *TeamService) LeaveProject(slug string, user *users_models.User) error {
	access, err := s.accessResolver.RequireVisible(slug, user)
	if err != nil {
		return err
	}

	if access.IsOwner() {
		return ErrOwnerIsNotMember
	}

	if err := s.deactivate(access.Project.ID, user.ID); err != nil {
		return err
	}

	s.auditLogWriter.WriteAuditLog("Left project", &user.ID, &access.Project.ID)

	return nil
}

func (s *TeamService) deactivate(projectID, userID uuid.UUID) error {
	member, err := s.teamMemberRepository.GetActiveMember(projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to get team member: %w", err)
	}
	if member == nil {
		return ErrMemberNotFound
	}

	member.IsActive = false
	if err := s.teamMemberRepository.UpdateMember(member); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}

	return nil
}

// ensureAssignableRole checks the role belongs to the project and grants
// nothing the caller lacks. Owners may assign any role.
func (s *TeamService) ensureAssignableRole(access *AccessResult, roleID *uuid.UUID) error {
	if roleID == nil {
		return nil
	}

	role, err := s.roleRepository.GetRoleByID(access.Project.ID, *roleID)
	if err != nil {
		return fmt.Errorf("failed to get role: %w", err)
	}
	if role == nil {
		return ErrRoleNotFound
	}

	if !access.IsOwner() && !access.Permissions.Covers(role.Matrix()) {
		return ErrRoleExceedsPermissions
	}

	return nil
}

func normalizeTeamPermission(permission projects_enums.TeamPermission) (projects_enums.TeamPermission, error) {
	if permission == "" {
		return projects_enums.TeamPermissionMember, nil
	}

	if !permission.IsValid() || permission == projects_enums.TeamPermissionOwner {
		return "", validation.NewValidationError(
			validation.ErrorInvalidValue,
			"permission",
			fmt.Sprintf("invalid team permission: %s", permission),
		)
	}

	return permission, nil
}
