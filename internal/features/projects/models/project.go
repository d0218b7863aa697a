package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID            uuid.UUID  `json:"id"            gorm:"column:id"`
	UserID        uuid.UUID  `json:"userId"        gorm:"column:user_id"`
	Name          string     `json:"name"          gorm:"column:name"`
	Slug          string     `json:"slug"          gorm:"column:slug"`
	Description   string     `json:"description"   gorm:"column:description"`
	IsPublic      bool       `json:"isPublic"      gorm:"column:is_public"`
	SlugChangedAt *time.Time `json:"slugChangedAt" gorm:"column:slug_changed_at"`
	CreatedAt     time.Time  `json:"createdAt"     gorm:"column:created_at"`

	// Used for caching non-existent slugs
	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}
