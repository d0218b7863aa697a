package notifications_repositories

import (
	"errors"
	"time"

	notifications_enums "matchme/internal/features/notifications/enums"
	notifications_models "matchme/internal/features/notifications/models"
	"matchme/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository struct{}

func (r *NotificationRepository) CreateNotification(notification *notifications_models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	return storage.GetDb().Create(notification).Error
}

func (r *NotificationRepository) GetNotificationByID(
	notificationID uuid.UUID,
) (*notifications_models.Notification, error) {
	var notification notifications_models.Notification

	err := storage.GetDb().Where("id = ?", notificationID).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &notification, nil
}

func (r *NotificationRepository) GetFeed(
	recipientID uuid.UUID,
	cursor *notifications_models.FeedCursor,
	limit int,
) ([]notifications_models.Notification, error) {
	notifications := make([]notifications_models.Notification, 0)

	query := storage.GetDb().
		Where("recipient_id = ? AND status = ?", recipientID, notifications_enums.NotificationStatusActive)

	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error

	return notifications, err
}

func (r *NotificationRepository) CountUnreadByType(
	recipientID uuid.UUID,
) (map[notifications_enums.NotificationType]int, error) {
	var rows []struct {
		Type  notifications_enums.NotificationType `gorm:"column:type"`
		Count int                                  `gorm:"column:count"`
	}

	err := storage.GetDb().
		Model(&notifications_models.Notification{}).
		Select("type, COUNT(*) AS count").
		Where("recipient_id = ? AND status = ? AND is_read = ?",
			recipientID, notifications_enums.NotificationStatusActive, false).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[notifications_enums.NotificationType]int, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}

	return counts, nil
}

func (r *NotificationRepository) MarkRead(
	recipientID uuid.UUID,
	notificationType notifications_enums.NotificationType,
	from *time.Time,
	to *time.Time,
) (int64, error) {
	query := storage.GetDb().
		Model(&notifications_models.Notification{}).
		Where("recipient_id = ? AND type = ? AND is_read = ?", recipientID, notificationType, false)

	if from != nil {
		query = query.Where("created_at > ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	result := query.Update("is_read", true)

	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) MarkNotificationRead(recipientID, notificationID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Model(&notifications_models.Notification{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Update("is_read", true)

	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) MarkAllRead(recipientID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Model(&notifications_models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)

	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) DeleteByReference(referenceID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Where("reference_id = ?", referenceID).
		Delete(&notifications_models.Notification{})

	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) DeleteReadOlderThan(cutoff time.Time) (int64, error) {
	result := storage.GetDb().
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&notifications_models.Notification{})

	return result.RowsAffected, result.Error
}
