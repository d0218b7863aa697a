package notifications_grouping

import (
	"slices"
	"time"

	notifications_enums "matchme/internal/features/notifications/enums"
	notifications_models "matchme/internal/features/notifications/models"

	"github.com/google/uuid"
)

type Tier string

const (
	TierToday    Tier = "today"
	TierThisWeek Tier = "this_week"
	TierEarlier  Tier = "earlier"
)

const (
	DefaultTodayWindow        = 24 * time.Hour
	DefaultWeekWindow         = 7 * 24 * time.Hour
	DefaultSenderDisplayLimit = 3
)

// Entry is one row of the feed: either a single notification or a group of
// same-type notifications. Notification is the newest constituent.
type Entry struct {
	Notification   notifications_models.Notification `json:"notification"`
	Tier           Tier                              `json:"tier"`
	GroupedCount   int                               `json:"groupedCount"`
	GroupedSenders []uuid.UUID                       `json:"groupedSenders"`
	UnreadCount    int                               `json:"unreadCount"`
	IsRead         bool                              `json:"isRead"`
}

func (e Entry) IsGrouped() bool {
	return e.GroupedCount > 1
}

type Engine struct {
	GroupableTypes     map[notifications_enums.NotificationType]bool
	SenderDisplayLimit int
	TodayWindow        time.Duration
	WeekWindow         time.Duration
}

func NewEngine(groupableTypes []string, senderDisplayLimit int) *Engine {
	groupable := make(map[notifications_enums.NotificationType]bool, len(groupableTypes))
	for _, t := range groupableTypes {
		groupable[notifications_enums.NotificationType(t)] = true
	}

	if senderDisplayLimit <= 0 {
		senderDisplayLimit = DefaultSenderDisplayLimit
	}

	return &Engine{
		GroupableTypes:     groupable,
		SenderDisplayLimit: senderDisplayLimit,
		TodayWindow:        DefaultTodayWindow,
		WeekWindow:         DefaultWeekWindow,
	}
}

// TierOf buckets by age. Timestamps in the future count as today.
func (e *Engine) TierOf(createdAt time.Time, now time.Time) Tier {
	age := now.Sub(createdAt)

	switch {
	case age < e.TodayWindow:
		return TierToday
	case age < e.WeekWindow:
		return TierThisWeek
	default:
		return TierEarlier
	}
}

// TierRange returns the created_at bounds of tier at now: from is exclusive,
// to is inclusive and a nil bound is open.
func (e *Engine) TierRange(tier Tier, now time.Time) (from *time.Time, to *time.Time) {
	todayStart := now.Add(-e.TodayWindow)
	weekStart := now.Add(-e.WeekWindow)

	switch tier {
	case TierToday:
		return &todayStart, nil
	case TierThisWeek:
		return &weekStart, &todayStart
	default:
		return nil, &weekStart
	}
}

// Group turns raw notifications into feed entries.
func (e *Engine) Group(notifications []notifications_models.Notification, now time.Time) []Entry {
	entries := make([]Entry, 0, len(notifications))

	for _, notification := range notifications {
		unread := 0
		if !notification.IsRead {
			unread = 1
		}

		entries = append(entries, Entry{
			Notification:   notification,
			GroupedCount:   1,
			GroupedSenders: []uuid.UUID{notification.SenderID},
			UnreadCount:    unread,
			IsRead:         notification.IsRead,
		})
	}

	return e.Regroup(entries, now)
}

type groupKey struct {
	recipientID uuid.UUID
	notifType   notifications_enums.NotificationType
	tier        Tier
}

// Regroup merges entries sharing (recipient, type, tier) for groupable types.
// Each entry is treated as a unit keyed by its newest timestamp, so running it
// on its own output changes nothing.
func (e *Engine) Regroup(entries []Entry, now time.Time) []Entry {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b Entry) int {
		return b.Notification.CreatedAt.Compare(a.Notification.CreatedAt)
	})

	result := make([]Entry, 0, len(ordered))
	positions := make(map[groupKey]int)

	for _, entry := range ordered {
		entry.Tier = e.TierOf(entry.Notification.CreatedAt, now)
		entry.GroupedSenders = e.capSenders(dedupeSenders(entry.GroupedSenders))
		if entry.GroupedCount < 1 {
			entry.GroupedCount = 1
		}

		if !e.GroupableTypes[entry.Notification.Type] {
			result = append(result, entry)
			continue
		}

		key := groupKey{
			recipientID: entry.Notification.RecipientID,
			notifType:   entry.Notification.Type,
			tier:        entry.Tier,
		}

		index, exists := positions[key]
		if !exists {
			positions[key] = len(result)
			result = append(result, entry)
			continue
		}

		result[index] = e.merge(result[index], entry)
	}

	return result
}

// merge folds older into newer. newer keeps its notification and position.
func (e *Engine) merge(newer Entry, older Entry) Entry {
	senders := slices.Clone(newer.GroupedSenders)
	senders = append(senders, older.GroupedSenders...)

	newer.GroupedSenders = e.capSenders(dedupeSenders(senders))
	newer.GroupedCount += older.GroupedCount
	newer.UnreadCount += older.UnreadCount
	newer.IsRead = newer.UnreadCount == 0

	return newer
}

func (e *Engine) capSenders(senders []uuid.UUID) []uuid.UUID {
	if len(senders) > e.SenderDisplayLimit {
		return senders[:e.SenderDisplayLimit]
	}

	return senders
}

func dedupeSenders(senders []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(senders))
	result := make([]uuid.UUID, 0, len(senders))

	for _, sender := range senders {
		if seen[sender] {
			continue
		}

		seen[sender] = true
		result = append(result, sender)
	}

	return result
}
