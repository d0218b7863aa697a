package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogsQueryDTO pages newest first; beforeDate pins the page window so
// offsets stay stable while new entries arrive.
type AuditLogsQueryDTO struct {
	Limit      int        `form:"limit"      json:"limit"`
	Offset     int        `form:"offset"     json:"offset"`
	BeforeDate *time.Time `form:"beforeDate" json:"beforeDate"`
}

type AuditLogPageDTO struct {
	Entries []*AuditLogDTO `json:"entries"`
	Total   int64          `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
	HasMore bool           `json:"hasMore"`
}

// AuditLogDTO is an entry joined with the actor profile and the project.
// Joined columns are nil once the profile or project is gone.
type AuditLogDTO struct {
	ID               uuid.UUID  `json:"id"               gorm:"column:id"`
	UserID           *uuid.UUID `json:"userId"           gorm:"column:user_id"`
	ProjectID        *uuid.UUID `json:"projectId"        gorm:"column:project_id"`
	Message          string     `json:"message"          gorm:"column:message"`
	CreatedAt        time.Time  `json:"createdAt"        gorm:"column:created_at"`
	ActorUsername    *string    `json:"actorUsername"    gorm:"column:actor_username"`
	ActorDisplayName *string    `json:"actorDisplayName" gorm:"column:actor_display_name"`
	ProjectName      *string    `json:"projectName"      gorm:"column:project_name"`
	ProjectSlug      *string    `json:"projectSlug"      gorm:"column:project_slug"`
}
