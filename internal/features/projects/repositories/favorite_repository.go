package projects_repositories

import (
	"time"

	projects_models "matchme/internal/features/projects/models"
	"matchme/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct{}

// AddFavorite reports whether a new row was inserted.
func (r *FavoriteRepository) AddFavorite(userID, projectID uuid.UUID) (bool, error) {
	favorite := &projects_models.FavoriteProject{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: projectID,
		CreatedAt: time.Now().UTC(),
	}

	result := storage.GetDb().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
			DoNothing: true,
		}).
		Create(favorite)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *FavoriteRepository) RemoveFavorite(userID, projectID uuid.UUID) error {
	return storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&projects_models.FavoriteProject{}).Error
}

func (r *FavoriteRepository) IsFavorite(userID, projectID uuid.UUID) (bool, error) {
	var count int64

	err := storage.GetDb().Model(&projects_models.FavoriteProject{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error

	return count > 0, err
}

func (r *FavoriteRepository) GetFavoriteProjects(userID uuid.UUID) ([]*projects_models.Project, error) {
	projects := make([]*projects_models.Project, 0)

	err := storage.GetDb().
		Joins("JOIN favorites_projects fp ON fp.project_id = projects.id").
		Where("fp.user_id = ?", userID).
		Order("fp.created_at DESC").
		Find(&projects).Error

	return projects, err
}
