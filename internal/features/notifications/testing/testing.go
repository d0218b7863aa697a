package notifications_testing

import (
	"bytes"
	"sort"
	"sync"
	"time"

	notifications_enums "matchme/internal/features/notifications/enums"
	notifications_models "matchme/internal/features/notifications/models"
	users_dto "matchme/internal/features/users/dto"

	"github.com/google/uuid"
)

// InMemoryNotificationStore implements notifications_interfaces.NotificationStore.
type InMemoryNotificationStore struct {
	mu            sync.Mutex
	Notifications map[uuid.UUID]*notifications_models.Notification
	Err           error
}

func NewInMemoryNotificationStore() *InMemoryNotificationStore {
	return &InMemoryNotificationStore{Notifications: map[uuid.UUID]*notifications_models.Notification{}}
}

func (s *InMemoryNotificationStore) Add(notification notifications_models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.Status == "" {
		notification.Status = notifications_enums.NotificationStatusActive
	}

	s.Notifications[notification.ID] = &notification
}

func (s *InMemoryNotificationStore) CreateNotification(notification *notifications_models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	copied := *notification
	s.Notifications[notification.ID] = &copied

	return nil
}

func (s *InMemoryNotificationStore) GetNotificationByID(
	notificationID uuid.UUID,
) (*notifications_models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	notification, ok := s.Notifications[notificationID]
	if !ok {
		return nil, nil
	}

	copied := *notification
	return &copied, nil
}

func (s *InMemoryNotificationStore) filter(
	keep func(*notifications_models.Notification) bool,
	limit int,
) []notifications_models.Notification {
	result := make([]notifications_models.Notification, 0)
	for _, notification := range s.Notifications {
		if keep(notification) {
			result = append(result, *notification)
		}
	}

	sort.Slice(result, func(i, j int) bool { return isAfter(result[i], result[j].CreatedAt, result[j].ID) })

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result
}

// isAfter reports whether n sorts after (createdAt, id) in feed order.
func isAfter(n notifications_models.Notification, createdAt time.Time, id uuid.UUID) bool {
	if !n.CreatedAt.Equal(createdAt) {
		return n.CreatedAt.After(createdAt)
	}

	return bytes.Compare(n.ID[:], id[:]) > 0
}

func (s *InMemoryNotificationStore) GetFeed(
	recipientID uuid.UUID,
	cursor *notifications_models.FeedCursor,
	limit int,
) ([]notifications_models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	return s.filter(func(n *notifications_models.Notification) bool {
		return n.RecipientID == recipientID &&
			n.Status == notifications_enums.NotificationStatusActive &&
			(cursor == nil || !isAfter(*n, cursor.CreatedAt, cursor.ID) && !isSame(*n, cursor))
	}, limit), nil
}

func isSame(n notifications_models.Notification, cursor *notifications_models.FeedCursor) bool {
	return n.CreatedAt.Equal(cursor.CreatedAt) && n.ID == cursor.ID
}

func (s *InMemoryNotificationStore) CountUnreadByType(
	recipientID uuid.UUID,
) (map[notifications_enums.NotificationType]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	counts := make(map[notifications_enums.NotificationType]int)
	for _, n := range s.Notifications {
		if n.RecipientID == recipientID &&
			n.Status == notifications_enums.NotificationStatusActive &&
			!n.IsRead {
			counts[n.Type]++
		}
	}

	return counts, nil
}

func (s *InMemoryNotificationStore) update(keep func(*notifications_models.Notification) bool) int64 {
	var updated int64
	for _, notification := range s.Notifications {
		if keep(notification) {
			notification.IsRead = true
			updated++
		}
	}

	return updated
}

func (s *InMemoryNotificationStore) MarkRead(
	recipientID uuid.UUID,
	notificationType notifications_enums.NotificationType,
	from *time.Time,
	to *time.Time,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}

	return s.update(func(n *notifications_models.Notification) bool {
		return n.RecipientID == recipientID &&
			n.Type == notificationType &&
			!n.IsRead &&
			(from == nil || n.CreatedAt.After(*from)) &&
			(to == nil || !n.CreatedAt.After(*to))
	}), nil
}

func (s *InMemoryNotificationStore) MarkNotificationRead(recipientID, notificationID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}

	return s.update(func(n *notifications_models.Notification) bool {
		return n.ID == notificationID && n.RecipientID == recipientID
	}), nil
}

func (s *InMemoryNotificationStore) MarkAllRead(recipientID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}

	return s.update(func(n *notifications_models.Notification) bool {
		return n.RecipientID == recipientID && !n.IsRead
	}), nil
}

func (s *InMemoryNotificationStore) DeleteByReference(referenceID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}

	var deleted int64
	for id, notification := range s.Notifications {
		if notification.ReferenceID != nil && *notification.ReferenceID == referenceID {
			delete(s.Notifications, id)
			deleted++
		}
	}

	return deleted, nil
}

func (s *InMemoryNotificationStore) DeleteReadOlderThan(cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}

	var deleted int64
	for id, notification := range s.Notifications {
		if notification.IsRead && notification.CreatedAt.Before(cutoff) {
			delete(s.Notifications, id)
			deleted++
		}
	}

	return deleted, nil
}

// StaticProfiles implements notifications_interfaces.ProfileLookup.
type StaticProfiles map[uuid.UUID]users_dto.PublicProfileDTO

func (p StaticProfiles) Add(userID uuid.UUID, username string) {
	p[userID] = users_dto.PublicProfileDTO{ID: userID, Username: username, DisplayName: username}
}

func (p StaticProfiles) GetPublicProfiles(userIDs []uuid.UUID) (map[uuid.UUID]users_dto.PublicProfileDTO, error) {
	result := make(map[uuid.UUID]users_dto.PublicProfileDTO, len(userIDs))
	for _, id := range userIDs {
		if profile, ok := p[id]; ok {
			result[id] = profile
		}
	}

	return result, nil
}
