package notifications_grouping

import (
	notifications_enums "matchme/internal/features/notifications/enums"
)

type Category string

const (
	CategoryAll              Category = "all"
	CategoryFollowerActivity Category = "follower-activity"
	CategoryProjectUpdates   Category = "project-updates"
	CategoryMentionsTags     Category = "mentions-tags"
	CategoryDirectMessages   Category = "direct-messages"
)

var AllCategories = []Category{
	CategoryAll,
	CategoryFollowerActivity,
	CategoryProjectUpdates,
	CategoryMentionsTags,
	CategoryDirectMessages,
}

var categoryByType = map[notifications_enums.NotificationType]Category{
	notifications_enums.NotificationTypeFollow:          CategoryFollowerActivity,
	notifications_enums.NotificationTypeProjectInvite:   CategoryProjectUpdates,
	notifications_enums.NotificationTypeProjectFavorite: CategoryProjectUpdates,
	notifications_enums.NotificationTypeProjectUpdate:   CategoryProjectUpdates,
	notifications_enums.NotificationTypeMention:         CategoryMentionsTags,
	notifications_enums.NotificationTypeTag:             CategoryMentionsTags,
	notifications_enums.NotificationTypeDirectMessage:   CategoryDirectMessages,
}

type BadgeCounts map[Category]int

func CategoryOf(notificationType notifications_enums.NotificationType) (Category, bool) {
	category, ok := categoryByType[notificationType]
	return category, ok
}

func newBadgeCounts() BadgeCounts {
	counts := make(BadgeCounts, len(AllCategories))
	for _, category := range AllCategories {
		counts[category] = 0
	}

	return counts
}

func (c BadgeCounts) add(notificationType notifications_enums.NotificationType, unread int) {
	if unread <= 0 {
		return
	}

	c[CategoryAll] += unread

	if category, ok := CategoryOf(notificationType); ok {
		c[category] += unread
	}
}

// CountBadges sums unread constituents per category. Every category is
// present; types without a category are counted under all only.
func CountBadges(entries []Entry) BadgeCounts {
	counts := newBadgeCounts()
	for _, entry := range entries {
		counts.add(entry.Notification.Type, entry.UnreadCount)
	}

	return counts
}

// CountBadgesByType folds per-type unread totals into categories with the
// same rules as CountBadges.
func CountBadgesByType(unreadByType map[notifications_enums.NotificationType]int) BadgeCounts {
	counts := newBadgeCounts()
	for notificationType, unread := range unreadByType {
		counts.add(notificationType, unread)
	}

	return counts
}
