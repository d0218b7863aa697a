package notifications_models

import (
	"time"

	notifications_enums "matchme/internal/features/notifications/enums"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID                              `json:"id"          gorm:"column:id"`
	Type        notifications_enums.NotificationType   `json:"type"        gorm:"column:type"`
	CreatedAt   time.Time                              `json:"createdAt"   gorm:"column:created_at"`
	SenderID    uuid.UUID                              `json:"senderId"    gorm:"column:sender_id"`
	RecipientID uuid.UUID                              `json:"recipientId" gorm:"column:recipient_id"`
	ReferenceID *uuid.UUID                             `json:"referenceId" gorm:"column:reference_id"`
	IsRead      bool                                   `json:"isRead"      gorm:"column:is_read"`
	Status      notifications_enums.NotificationStatus `json:"status"      gorm:"column:status"`
}

func (Notification) TableName() string {
	return "notifications"
}

// FeedCursor points at the last notification of a feed page. Pages continue
// strictly after it in (created_at, id) descending order. A nil ID
// continues strictly before CreatedAt.
type FeedCursor struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        uuid.UUID `json:"id"`
}
