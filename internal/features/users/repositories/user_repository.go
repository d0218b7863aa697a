package users_repositories

import (
	"errors"
	"strings"

	users_models "matchme/internal/features/users/models"
	"matchme/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

// GetUserByID returns nil without error when the profile does not exist.
func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error) {
	users := make([]*users_models.User, 0, len(userIDs))
	if len(userIDs) == 0 {
		return users, nil
	}

	if err := storage.GetDb().Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) IsUsernameTaken(username string) (bool, error) {
	var count int64

	err := storage.GetDb().Model(&users_models.User{}).
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
