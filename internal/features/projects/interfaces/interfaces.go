package projects_interfaces

import (
	"time"

	projects_dto "matchme/internal/features/projects/dto"
	projects_models "matchme/internal/features/projects/models"

	"github.com/google/uuid"
)

type ProjectDeletionListener interface {
	OnBeforeProjectDeletion(projectID uuid.UUID) error
}

type AuditLogWriter interface {
	WriteAuditLog(message string, userID *uuid.UUID, projectID *uuid.UUID)
}

// NotificationSender delivers a notification of notificationType from sender
// to recipient. referenceID points at the project it is about.
type NotificationSender interface {
	SendNotification(senderID, recipientID uuid.UUID, notificationType string, referenceID *uuid.UUID) error
}

type ProjectCache interface {
	Get(key string) *projects_models.Project
	Set(key string, project *projects_models.Project)
	Invalidate(keys ...string)
}

// Read methods return nil without error when the row does not exist.
type ProjectStore interface {
	CreateProject(project *projects_models.Project, roles []*projects_models.ProjectRole) error
	GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error)
	GetProjectBySlug(slug string) (*projects_models.Project, error)
	IsSlugTaken(slug string) (bool, error)
	UpdateProject(project *projects_models.Project) error
	UpdateSlug(projectID uuid.UUID, slug string, changedAt time.Time) error
	DeleteProject(projectID uuid.UUID) error
	GetProjectsForUser(userID uuid.UUID) ([]*projects_dto.ProjectListItemDTO, error)
}

type RoleStore interface {
	GetRoleByID(projectID, roleID uuid.UUID) (*projects_models.ProjectRole, error)
	GetDefaultRole(projectID uuid.UUID) (*projects_models.ProjectRole, error)
	GetRolesByProject(projectID uuid.UUID) ([]*projects_models.ProjectRole, error)
	CreateRole(role *projects_models.ProjectRole) error
	UpdateRole(role *projects_models.ProjectRole) error
	DeleteRole(projectID, roleID uuid.UUID) error
	SetDefaultRole(projectID, roleID uuid.UUID) error
}

type TeamMemberStore interface {
	GetActiveMember(projectID, userID uuid.UUID) (*projects_models.ProjectTeamMember, error)
	GetMember(projectID, userID uuid.UUID) (*projects_models.ProjectTeamMember, error)
	GetMembersByProject(projectID uuid.UUID) ([]*projects_models.ProjectTeamMember, error)
	GetActiveMembersWithProfiles(projectID uuid.UUID) ([]*projects_dto.TeamMemberResponseDTO, error)
	CreateMember(member *projects_models.ProjectTeamMember) error
	UpdateMember(member *projects_models.ProjectTeamMember) error
}

type FavoriteStore interface {
	AddFavorite(userID, projectID uuid.UUID) (bool, error)
	RemoveFavorite(userID, projectID uuid.UUID) error
	IsFavorite(userID, projectID uuid.UUID) (bool, error)
	GetFavoriteProjects(userID uuid.UUID) ([]*projects_models.Project, error)
}
