package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type FavoriteProject struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	ProjectID uuid.UUID `json:"projectId" gorm:"column:project_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (FavoriteProject) TableName() string {
	return "favorites_projects"
}
