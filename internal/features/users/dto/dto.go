package users_dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PublicProfileDTO is what other users may see, e.g. notification senders.
type PublicProfileDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl"`
}

type UsernameAvailabilityResponseDTO struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

type AccessTokenDTO struct {
	UserID uuid.UUID `json:"userId"`
	Token  string    `json:"token"`
}
