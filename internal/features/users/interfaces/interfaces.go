package users_interfaces

import (
	users_models "matchme/internal/features/users/models"

	"github.com/google/uuid"
)

type UserReader interface {
	GetUserByID(userID uuid.UUID) (*users_models.User, error)
	GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error)
	IsUsernameTaken(username string) (bool, error)
}

// TokenVerifier resolves a session token to its profile.
type TokenVerifier interface {
	GetUserFromToken(token string) (*users_models.User, error)
}
