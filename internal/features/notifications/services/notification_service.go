package notifications_services

import (
	"fmt"
	"log/slog"
	"time"

	notifications_dto "matchme/internal/features/notifications/dto"
	notifications_enums "matchme/internal/features/notifications/enums"
	notifications_grouping "matchme/internal/features/notifications/grouping"
	notifications_interfaces "matchme/internal/features/notifications/interfaces"
	notifications_models "matchme/internal/features/notifications/models"
	users_dto "matchme/internal/features/users/dto"
	users_models "matchme/internal/features/users/models"

	"github.com/google/uuid"
)

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 200
)

type NotificationService struct {
	notificationRepository notifications_interfaces.NotificationStore
	profileLookup          notifications_interfaces.ProfileLookup
	engine                 *notifications_grouping.Engine
	retentionDays          int
	logger                 *slog.Logger
	now                    func() time.Time
}

func NewNotificationService(
	notificationRepository notifications_interfaces.NotificationStore,
	profileLookup notifications_interfaces.ProfileLookup,
	engine *notifications_grouping.Engine,
	retentionDays int,
	logger *slog.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepository: notificationRepository,
		profileLookup:          profileLookup,
		engine:                 engine,
		retentionDays:          retentionDays,
		logger:                 logger,
		now:                    func() time.Time { return time.Now().UTC() },
	}
}

// SendNotification stores a notification. It is also used by other features
// (project invites, favorites) through their NotificationSender interface.
func (s *NotificationService) SendNotification(
	senderID, recipientID uuid.UUID,
	notificationType string,
	referenceID *uuid.UUID,
) error {
	typed := notifications_enums.NotificationType(notificationType)
	if !typed.IsValid() {
		return ErrUnknownType
	}

	if senderID == recipientID {
		return ErrSelfNotification
	}

	notification := &notifications_models.Notification{
		ID:          uuid.New(),
		Type:        typed,
		CreatedAt:   s.now(),
		SenderID:    senderID,
		RecipientID: recipientID,
		ReferenceID: referenceID,
		IsRead:      false,
		Status:      notifications_enums.NotificationStatusActive,
	}

	if err := s.notificationRepository.CreateNotification(notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (s *NotificationService) CreateNotification(
	request *notifications_dto.CreateNotificationRequestDTO,
	sender *users_models.User,
) error {
	return s.SendNotification(sender.ID, request.FollowingID, string(request.Type), nil)
}

func (s *NotificationService) GetFeed(
	user *users_models.User,
	request *notifications_dto.GetFeedRequestDTO,
) (*notifications_dto.FeedResponseDTO, error) {
	limit := request.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	notifications, err := s.notificationRepository.GetFeed(user.ID, request.Before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	now := s.now()
	entries := s.engine.Group(notifications, now)

	profiles, err := s.profileLookup.GetPublicProfiles(collectSenders(entries))
	if err != nil {
		return nil, fmt.Errorf("failed to get sender profiles: %w", err)
	}

	counts, err := s.GetCounts(user)
	if err != nil {
		return nil, err
	}

	response := &notifications_dto.FeedResponseDTO{
		Entries: make([]notifications_dto.FeedEntryDTO, 0, len(entries)),
		Counts:  counts,
	}

	for _, entry := range entries {
		senders := make([]users_dto.PublicProfileDTO, 0, len(entry.GroupedSenders))
		for _, senderID := range entry.GroupedSenders {
			if profile, ok := profiles[senderID]; ok {
				senders = append(senders, profile)
			}
		}

		response.Entries = append(response.Entries, notifications_dto.FeedEntryDTO{
			Entry:   entry,
			Senders: senders,
		})
	}

	if len(notifications) == limit {
		last := notifications[len(notifications)-1]
		response.NextCursor = &notifications_models.FeedCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return response, nil
}

func (s *NotificationService) GetCounts(user *users_models.User) (notifications_grouping.BadgeCounts, error) {
	unreadByType, err := s.notificationRepository.CountUnreadByType(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return notifications_grouping.CountBadgesByType(unreadByType), nil
}

// MarkRead marks a feed entry as read. For groupable types every unread
// notification folded into the same group is marked too.
func (s *NotificationService) MarkRead(
	user *users_models.User,
	notificationID uuid.UUID,
) (*notifications_dto.MarkReadResponseDTO, error) {
	notification, err := s.notificationRepository.GetNotificationByID(notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	if notification == nil || notification.RecipientID != user.ID {
		return nil, ErrNotificationNotFound
	}

	var updated int64
	if s.engine.GroupableTypes[notification.Type] {
		now := s.now()
		from, to := s.engine.TierRange(s.engine.TierOf(notification.CreatedAt, now), now)

		updated, err = s.notificationRepository.MarkRead(user.ID, notification.Type, from, to)
	} else {
		updated, err = s.notificationRepository.MarkNotificationRead(user.ID, notification.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return &notifications_dto.MarkReadResponseDTO{Updated: updated}, nil
}

func (s *NotificationService) MarkAllRead(user *users_models.User) (*notifications_dto.MarkReadResponseDTO, error) {
	updated, err := s.notificationRepository.MarkAllRead(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return &notifications_dto.MarkReadResponseDTO{Updated: updated}, nil
}

// OnBeforeProjectDeletion drops notifications pointing at the project.
func (s *NotificationService) OnBeforeProjectDeletion(projectID uuid.UUID) error {
	deleted, err := s.notificationRepository.DeleteByReference(projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project notifications: %w", err)
	}

	s.logger.Info("removed notifications of deleted project",
		slog.String("projectId", projectID.String()),
		slog.Int64("deleted", deleted))

	return nil
}

// CleanupReadNotifications deletes read notifications past the retention window.
func (s *NotificationService) CleanupReadNotifications() (int64, error) {
	if s.retentionDays <= 0 {
		return 0, nil
	}

	cutoff := s.now().AddDate(0, 0, -s.retentionDays)

	deleted, err := s.notificationRepository.DeleteReadOlderThan(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old notifications: %w", err)
	}

	return deleted, nil
}

func collectSenders(entries []notifications_grouping.Entry) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	senders := make([]uuid.UUID, 0)

	for _, entry := range entries {
		for _, senderID := range entry.GroupedSenders {
			if !seen[senderID] {
				seen[senderID] = true
				senders = append(senders, senderID)
			}
		}
	}

	return senders
}
