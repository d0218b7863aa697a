package notifications_dto

import (
	notifications_enums "matchme/internal/features/notifications/enums"
	notifications_grouping "matchme/internal/features/notifications/grouping"
	notifications_models "matchme/internal/features/notifications/models"
	users_dto "matchme/internal/features/users/dto"

	"github.com/google/uuid"
)

type CreateNotificationRequestDTO struct {
	FollowingID uuid.UUID                            `json:"followingId" binding:"required"`
	Type        notifications_enums.NotificationType `json:"type"        binding:"required"`
}

type GetFeedRequestDTO struct {
	Limit int `form:"limit" json:"limit"`
	// Before is built from the raw "before" and "beforeId" query values by the controller.
	Before *notifications_models.FeedCursor `form:"-" json:"before"`
}

type FeedEntryDTO struct {
	notifications_grouping.Entry
	Senders []users_dto.PublicProfileDTO `json:"senders"`
}

type FeedResponseDTO struct {
	Entries    []FeedEntryDTO                     `json:"entries"`
	Counts     notifications_grouping.BadgeCounts `json:"counts"`
	NextCursor *notifications_models.FeedCursor   `json:"nextCursor"`
}

type MarkReadResponseDTO struct {
	Updated int64 `json:"updated"`
}
