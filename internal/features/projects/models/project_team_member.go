package projects_models

import (
	"time"

	projects_enums "matchme/internal/features/projects/enums"

	"github.com/google/uuid"
)

// ProjectTeamMember links a profile to a project. At most one active row
// exists per (project, user). The owner is projects.user_id, not a row here.
type ProjectTeamMember struct {
	ID         uuid.UUID                     `json:"id"         gorm:"column:id"`
	ProjectID  uuid.UUID                     `json:"projectId"  gorm:"column:project_id"`
	UserID     uuid.UUID                     `json:"userId"     gorm:"column:user_id"`
	RoleID     *uuid.UUID                    `json:"roleId"     gorm:"column:role"`
	Permission projects_enums.TeamPermission `json:"permission" gorm:"column:permission"`
	IsActive   bool                          `json:"isActive"   gorm:"column:is_active"`
	JoinedDate time.Time                     `json:"joinedDate" gorm:"column:joined_date"`
}

func (ProjectTeamMember) TableName() string {
	return "project_team_members"
}
