package notifications_grouping

import (
	"testing"
	"time"

	notifications_enums "matchme/internal/features/notifications/enums"
	notifications_models "matchme/internal/features/notifications/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)

func newNotification(
	recipientID uuid.UUID,
	senderID uuid.UUID,
	notificationType notifications_enums.NotificationType,
	age time.Duration,
) notifications_models.Notification {
	return notifications_models.Notification{
		ID:          uuid.New(),
		Type:        notificationType,
		CreatedAt:   now.Add(-age),
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      notifications_enums.NotificationStatusActive,
	}
}

func Test_Group_FiveFollowsToday_ProducesSingleGroupWithCappedSenders(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()
	senders := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	notifications := make([]notifications_models.Notification, 0, len(senders))
	for i, sender := range senders {
		notifications = append(notifications, newNotification(
			recipient, sender, notifications_enums.NotificationTypeFollow, time.Duration(i+1)*time.Minute,
		))
	}

	entries := engine.Group(notifications, now)

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, notifications_enums.NotificationTypeFollow, entry.Notification.Type)
	assert.Equal(t, TierToday, entry.Tier)
	assert.Equal(t, 5, entry.GroupedCount)
	assert.Equal(t, senders[:3], entry.GroupedSenders)
	assert.Equal(t, notifications[0].ID, entry.Notification.ID)
	assert.True(t, entry.IsGrouped())
}

func Test_Group_RepeatedSender_IsListedOnceButCounted(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	entries := engine.Group([]notifications_models.Notification{
		newNotification(recipient, alice, notifications_enums.NotificationTypeFollow, time.Minute),
		newNotification(recipient, alice, notifications_enums.NotificationTypeFollow, 2*time.Minute),
		newNotification(recipient, bob, notifications_enums.NotificationTypeFollow, 3*time.Minute),
	}, now)

	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].GroupedCount)
	assert.Equal(t, []uuid.UUID{alice, bob}, entries[0].GroupedSenders)
}

func Test_Group_BurstSpanningTwoTiers_ProducesOneGroupPerTier(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()

	entries := engine.Group([]notifications_models.Notification{
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, time.Hour),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 23*time.Hour),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 25*time.Hour),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 48*time.Hour),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 10*24*time.Hour),
	}, now)

	require.Len(t, entries, 3)
	assert.Equal(t, TierToday, entries[0].Tier)
	assert.Equal(t, 2, entries[0].GroupedCount)
	assert.Equal(t, TierThisWeek, entries[1].Tier)
	assert.Equal(t, 2, entries[1].GroupedCount)
	assert.Equal(t, TierEarlier, entries[2].Tier)
	assert.Equal(t, 1, entries[2].GroupedCount)
}

func Test_Group_NonGroupableTypes_PassThroughInOrder(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()

	notifications := []notifications_models.Notification{
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeMention, time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeMention, 2*time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeProjectInvite, 3*time.Minute),
	}

	entries := engine.Group(notifications, now)

	require.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, notifications[i].ID, entry.Notification.ID)
		assert.Equal(t, 1, entry.GroupedCount)
		assert.False(t, entry.IsGrouped())
	}
}

func Test_Group_InterleavedTypes_MergesAcrossGapsAtNewestPosition(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()

	mention := newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeMention, 2*time.Minute)
	newestFollow := newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, time.Minute)
	olderFollow := newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 3*time.Minute)

	entries := engine.Group([]notifications_models.Notification{newestFollow, mention, olderFollow}, now)

	require.Len(t, entries, 2)
	assert.Equal(t, newestFollow.ID, entries[0].Notification.ID)
	assert.Equal(t, 2, entries[0].GroupedCount)
	assert.Equal(t, mention.ID, entries[1].Notification.ID)
}

func Test_Group_UnorderedInput_IsSortedNewestFirst(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()

	older := newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeMention, time.Hour)
	newer := newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeTag, time.Minute)

	entries := engine.Group([]notifications_models.Notification{older, newer}, now)

	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].Notification.ID)
	assert.Equal(t, older.ID, entries[1].Notification.ID)
}

func Test_Group_NewGroupableType_IsGroupedWithoutCodeChanges(t *testing.T) {
	engine := NewEngine([]string{"follow", "project_favorite"}, 3)
	recipient := uuid.New()

	entries := engine.Group([]notifications_models.Notification{
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeProjectFavorite, time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeProjectFavorite, 2*time.Minute),
	}, now)

	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].GroupedCount)
}

func Test_Regroup_OnGroupedOutput_IsIdempotent(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()

	notifications := []notifications_models.Notification{
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeMention, 2*time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 3*time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 4*time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 5*time.Minute),
		newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 3*24*time.Hour),
	}
	notifications[2].IsRead = true

	once := engine.Group(notifications, now)
	twice := engine.Regroup(once, now)

	assert.Equal(t, once, twice)
	assert.Equal(t, 4, once[0].GroupedCount)
	assert.Equal(t, 3, once[0].UnreadCount)
}

func Test_Group_MixedReadState_GroupIsUnreadUntilAllRead(t *testing.T) {
	engine := NewEngine([]string{"follow"}, 3)
	recipient := uuid.New()

	read := newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, time.Minute)
	read.IsRead = true
	unread := newNotification(recipient, uuid.New(), notifications_enums.NotificationTypeFollow, 2*time.Minute)

	entries := engine.Group([]notifications_models.Notification{read, unread}, now)

	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsRead)
	assert.Equal(t, 1, entries[0].UnreadCount)
}

func Test_TierRange_MatchesTierOf(t *testing.T) {
	engine := NewEngine(nil, 3)

	from, to := engine.TierRange(TierThisWeek, now)
	require.NotNil(t, from)
	require.NotNil(t, to)

	assert.Equal(t, TierEarlier, engine.TierOf(*from, now))
	assert.Equal(t, TierThisWeek, engine.TierOf(from.Add(time.Second), now))
	assert.Equal(t, TierThisWeek, engine.TierOf(*to, now))
	assert.Equal(t, TierToday, engine.TierOf(to.Add(time.Second), now))
}
