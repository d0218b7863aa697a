package users_models

import (
	"time"

	users_enums "matchme/internal/features/users/enums"

	"github.com/google/uuid"
)

// User is a profile row. Credentials live with the external auth provider,
// the profile id is the session subject.
type User struct {
	ID          uuid.UUID              `json:"id"`
	Username    string                 `json:"username"`
	DisplayName string                 `json:"displayName"`
	Email       string                 `json:"email"`
	AvatarURL   *string                `json:"avatarUrl"   gorm:"column:avatar_url"`
	Status      users_enums.UserStatus `json:"status"`
	CreatedAt   time.Time              `json:"createdAt"`
}

func (User) TableName() string {
	return "profiles"
}

func (u *User) IsActiveUser() bool {
	return u.Status == users_enums.UserStatusActive
}
