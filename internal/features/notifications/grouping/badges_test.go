package notifications_grouping

import (
	"testing"
	"time"

	notifications_enums "matchme/internal/features/notifications/enums"
	notifications_models "matchme/internal/features/notifications/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CountBadges_MixedUnreadSet_CountsPerCategory(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()

	notifications := []notifications_models.Notification{
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 2*time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 3*time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeProjectInvite, 4*time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeProjectInvite, 5*time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeMention, 6*time.Minute),
	}

	counts := CountBadges(engine.Group(notifications, now))

	assert.Equal(t, BadgeCounts{
		CategoryAll:              6,
		CategoryFollowerActivity: 3,
		CategoryProjectUpdates:   2,
		CategoryMentionsTags:     1,
		CategoryDirectMessages:   0,
	}, counts)
}

func Test_CountBadges_UnknownType_CountedUnderAllOnly(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()

	counts := CountBadges(engine.Group([]notifications_models.Notification{
		newNotification(recipient, uuid.New(), notifications_enums.NotificationType("badge_earned"), time.Minute),
	}, now))

	assert.Equal(t, 1, counts[CategoryAll])
	assert.Equal(t, 0, counts[CategoryFollowerActivity])
	assert.Equal(t, 0, counts[CategoryProjectUpdates])
	assert.Equal(t, 0, counts[CategoryMentionsTags])
	assert.Equal(t, 0, counts[CategoryDirectMessages])
}

func Test_CountBadges_ReadNotifications_AreNotCounted(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()

	read := newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeMention, time.Minute)
	read.IsRead = true

	counts := CountBadges(engine.Group([]notifications_models.Notification{read}, now))

	assert.Len(t, counts, len(AllCategories))
	assert.Equal(t, 0, counts[CategoryAll])
}

func Test_CountBadgesByType_PerTypeTotals_FoldIntoCategories(t *testing.T) {
	counts := CountBadgesByType(map[notifications_enums.NotificationType]int{
		notifications_enums.NotificationTypeFollow:           1200,
		notifications_enums.NotificationTypeProjectFavorite:  2,
		notifications_enums.NotificationTypeProjectUpdate:    3,
		notifications_enums.NotificationType("badge_earned"): 4,
	})

	assert.Equal(t, BadgeCounts{
		CategoryAll:              1209,
		CategoryFollowerActivity: 1200,
		CategoryProjectUpdates:   5,
		CategoryMentionsTags:     0,
		CategoryDirectMessages:   0,
	}, counts)
}
