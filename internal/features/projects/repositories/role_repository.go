package projects_repositories

import (
	"errors"

	projects_models "matchme/internal/features/projects/models"
	"matchme/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleRepository struct{}

func (r *RoleRepository) GetRoleByID(projectID, roleID uuid.UUID) (*projects_models.ProjectRole, error) {
	var role projects_models.ProjectRole

	err := storage.GetDb().
		Where("id = ? AND project_id = ?", roleID, projectID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &role, nil
}

func (r *RoleRepository) GetDefaultRole(projectID uuid.UUID) (*projects_models.ProjectRole, error) {
	var role projects_models.ProjectRole

	err := storage.GetDb().
		Where("project_id = ? AND is_default = TRUE", projectID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &role, nil
}

func (r *RoleRepository) GetRolesByProject(projectID uuid.UUID) ([]*projects_models.ProjectRole, error) {
	roles := make([]*projects_models.ProjectRole, 0)

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("is_system_role DESC, created_at ASC").
		Find(&roles).Error

	return roles, err
}

func (r *RoleRepository) CreateRole(role *projects_models.ProjectRole) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}

	return storage.GetDb().Create(role).Error
}

func (r *RoleRepository) UpdateRole(role *projects_models.ProjectRole) error {
	return storage.GetDb().Model(&projects_models.ProjectRole{}).
		Where("id = ? AND project_id = ?", role.ID, role.ProjectID).
		Updates(map[string]any{
			"name":        role.Name,
			"badge_color": role.BadgeColor,
			"permissions": role.Permissions,
		}).Error
}

// DeleteRole detaches members from the role so they fall back to the default.
func (r *RoleRepository) DeleteRole(projectID, roleID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&projects_models.ProjectTeamMember{}).
			Where("project_id = ? AND role = ?", projectID, roleID).
			Update("role", nil).Error; err != nil {
			return err
		}

		return tx.Where("id = ? AND project_id = ?", roleID, projectID).
			Delete(&projects_models.ProjectRole{}).Error
	})
}

// SetDefaultRole keeps exactly one default role per project.
func (r *RoleRepository) SetDefaultRole(projectID, roleID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&projects_models.ProjectRole{}).
			Where("project_id = ? AND is_default = TRUE", projectID).
			Update("is_default", false).Error; err != nil {
			return err
		}

		result := tx.Model(&projects_models.ProjectRole{}).
			Where("id = ? AND project_id = ?", roleID, projectID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}
