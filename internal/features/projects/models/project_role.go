package projects_models

import (
	"time"

	projects_permissions "matchme/internal/features/projects/permissions"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectRole struct {
	ID           uuid.UUID                                       `json:"id"           gorm:"column:id"`
	ProjectID    uuid.UUID                                       `json:"projectId"    gorm:"column:project_id"`
	Name         string                                          `json:"name"         gorm:"column:name"`
	BadgeColor   *string                                         `json:"badgeColor"   gorm:"column:badge_color"`
	IsDefault    bool                                            `json:"isDefault"    gorm:"column:is_default"`
	IsSystemRole bool                                            `json:"isSystemRole" gorm:"column:is_system_role"`
	Permissions  datatypes.JSONType[projects_permissions.Matrix] `json:"permissions"  gorm:"column:permissions"`
	CreatedAt    time.Time                                       `json:"createdAt"    gorm:"column:created_at"`
}

func (ProjectRole) TableName() string {
	return "project_roles"
}

// Matrix returns a dense copy of the stored permissions.
func (r *ProjectRole) Matrix() projects_permissions.Matrix {
	return r.Permissions.Data().Normalize()
}

func (r *ProjectRole) SetMatrix(matrix projects_permissions.Matrix) {
	r.Permissions = datatypes.NewJSONType(matrix.Normalize())
}
