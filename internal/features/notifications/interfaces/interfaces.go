package notifications_interfaces

import (
	"time"

	notifications_enums "matchme/internal/features/notifications/enums"
	notifications_models "matchme/internal/features/notifications/models"
	users_dto "matchme/internal/features/users/dto"

	"github.com/google/uuid"
)

type NotificationStore interface {
	CreateNotification(notification *notifications_models.Notification) error
	GetNotificationByID(notificationID uuid.UUID) (*notifications_models.Notification, error)
	// GetFeed returns active notifications ordered by (created_at, id) descending,
	// strictly after cursor when set.
	GetFeed(
		recipientID uuid.UUID,
		cursor *notifications_models.FeedCursor,
		limit int,
	) ([]notifications_models.Notification, error)
	CountUnreadByType(recipientID uuid.UUID) (map[notifications_enums.NotificationType]int, error)
	// MarkRead marks unread notifications of one type with from < created_at <= to.
	MarkRead(
		recipientID uuid.UUID,
		notificationType notifications_enums.NotificationType,
		from *time.Time,
		to *time.Time,
	) (int64, error)
	MarkNotificationRead(recipientID, notificationID uuid.UUID) (int64, error)
	MarkAllRead(recipientID uuid.UUID) (int64, error)
	DeleteByReference(referenceID uuid.UUID) (int64, error)
	DeleteReadOlderThan(cutoff time.Time) (int64, error)
}

type ProfileLookup interface {
	GetPublicProfiles(userIDs []uuid.UUID) (map[uuid.UUID]users_dto.PublicProfileDTO, error)
}
