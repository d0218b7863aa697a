package notifications_services

import "errors"

var (
	ErrSelfNotification     = errors.New("cannot send a notification to yourself")
	ErrUnknownType          = errors.New("unknown notification type")
	ErrNotificationNotFound = errors.New("notification not found")
)
