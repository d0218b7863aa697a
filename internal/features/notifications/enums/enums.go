package notifications_enums

type NotificationType string

const (
	NotificationTypeFollow          NotificationType = "follow"
	NotificationTypeProjectInvite   NotificationType = "project_invite"
	NotificationTypeProjectFavorite NotificationType = "project_favorite"
	NotificationTypeProjectUpdate   NotificationType = "project_update"
	NotificationTypeMention         NotificationType = "mention"
	NotificationTypeTag             NotificationType = "tag"
	NotificationTypeDirectMessage   NotificationType = "direct_message"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeFollow,
		NotificationTypeProjectInvite,
		NotificationTypeProjectFavorite,
		NotificationTypeProjectUpdate,
		NotificationTypeMention,
		NotificationTypeTag,
		NotificationTypeDirectMessage:
		return true
	default:
		return false
	}
}

type NotificationStatus string

const (
	NotificationStatusActive    NotificationStatus = "active"
	NotificationStatusDismissed NotificationStatus = "dismissed"
)
