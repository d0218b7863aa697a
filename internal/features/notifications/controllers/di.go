package notifications_controllers

import (
	"sync"

	notifications_services "matchme/internal/features/notifications/services"
)

var (
	notificationControllerOnce sync.Once
	notificationController     *NotificationController
)

func GetNotificationController() *NotificationController {
	notificationControllerOnce.Do(func() {
		notificationController = &NotificationController{
			notificationService: notifications_services.GetNotificationService(),
		}
	})

	return notificationController
}
