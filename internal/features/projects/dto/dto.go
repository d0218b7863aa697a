package projects_dto

import (
	"encoding/json"
	"time"

	projects_enums "matchme/internal/features/projects/enums"
	projects_permissions "matchme/internal/features/projects/permissions"

	"github.com/google/uuid"
)

// Project DTOs
type CreateProjectRequestDTO struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Slug        string `json:"slug"        binding:"required"`
	Description string `json:"description" binding:"max=5000"`
	IsPublic    bool   `json:"isPublic"`
}

type UpdateProjectRequestDTO struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=5000"`
	IsPublic    bool   `json:"isPublic"`
}

type ProjectListItemDTO struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	Name      string    `json:"name"      gorm:"column:name"`
	Slug      string    `json:"slug"      gorm:"column:slug"`
	IsPublic  bool      `json:"isPublic"  gorm:"column:is_public"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	IsOwner   bool      `json:"isOwner"   gorm:"column:is_owner"`
	RoleName  *string   `json:"roleName"  gorm:"column:role_name"`
}

type ListProjectsResponseDTO struct {
	Projects []*ProjectListItemDTO `json:"projects"`
}

// Slug DTOs
type SlugAvailabilityResponseDTO struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

type SlugStatusResponseDTO struct {
	Slug                       string     `json:"slug"`
	CanChange                  bool       `json:"canChange"`
	NextAvailableDate          *time.Time `json:"nextAvailableDate,omitempty"`
	NextAvailableDateFormatted string     `json:"nextAvailableDateFormatted,omitempty"`
}

type ChangeSlugRequestDTO struct {
	Slug string `json:"slug" binding:"required"`
}

type DeleteProjectBlockedResponseDTO struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// Team DTOs
type AddTeamMemberRequestDTO struct {
	UserID     uuid.UUID                     `json:"userId"     binding:"required"`
	RoleID     *uuid.UUID                    `json:"roleId"`
	Permission projects_enums.TeamPermission `json:"permission"`
}

type UpdateTeamMemberRequestDTO struct {
	RoleID     *uuid.UUID                    `json:"roleId"`
	Permission projects_enums.TeamPermission `json:"permission"`
}

type TeamMemberResponseDTO struct {
	ID          uuid.UUID                     `json:"id"          gorm:"column:id"`
	UserID      uuid.UUID                     `json:"userId"      gorm:"column:user_id"`
	Username    string                        `json:"username"    gorm:"column:username"`
	DisplayName string                        `json:"displayName" gorm:"column:display_name"`
	RoleID      *uuid.UUID                    `json:"roleId"      gorm:"column:role_id"`
	RoleName    *string                       `json:"roleName"    gorm:"column:role_name"`
	Permission  projects_enums.TeamPermission `json:"permission"  gorm:"column:permission"`
	JoinedDate  time.Time                     `json:"joinedDate"  gorm:"column:joined_date"`
}

type ListTeamMembersResponseDTO struct {
	Members []*TeamMemberResponseDTO `json:"members"`
}

// Role DTOs
// Permissions stay raw so unknown resources or actions can be rejected.
type RoleRequestDTO struct {
	Name        string          `json:"name"        binding:"required,min=1,max=100"`
	BadgeColor  *string         `json:"badgeColor"`
	Permissions json.RawMessage `json:"permissions" binding:"required"`
}

type RoleResponseDTO struct {
	ID           uuid.UUID                   `json:"id"`
	Name         string                      `json:"name"`
	BadgeColor   *string                     `json:"badgeColor"`
	IsDefault    bool                        `json:"isDefault"`
	IsSystemRole bool                        `json:"isSystemRole"`
	Permissions  projects_permissions.Matrix `json:"permissions"`
	CreatedAt    time.Time                   `json:"createdAt"`
}

type ListRolesResponseDTO struct {
	Roles []*RoleResponseDTO `json:"roles"`
}

// Favorite DTOs
type FavoriteStatusResponseDTO struct {
	ProjectID  uuid.UUID `json:"projectId"`
	IsFavorite bool      `json:"isFavorite"`
}
