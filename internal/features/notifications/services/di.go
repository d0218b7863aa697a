package notifications_services

import (
	"sync"

	"matchme/internal/config"
	notifications_grouping "matchme/internal/features/notifications/grouping"
	notifications_repositories "matchme/internal/features/notifications/repositories"
	users_services "matchme/internal/features/users/services"
	"matchme/internal/util/logger"
)

var (
	notificationRepository = &notifications_repositories.NotificationRepository{}

	servicesOnce        sync.Once
	notificationService *NotificationService
	retentionWorker     *RetentionWorker
)

func initServices() {
	servicesOnce.Do(func() {
		env := config.GetEnv()
		log := logger.GetLogger()

		notificationService = NewNotificationService(
			notificationRepository,
			users_services.GetUserService(),
			notifications_grouping.NewEngine(
				env.GroupableNotificationTypes(),
				env.NotificationSenderDisplayLimit,
			),
			env.NotificationRetentionDays,
			log,
		)

		retentionWorker = NewRetentionWorker(notificationService, env.NotificationCleanupCron, log)
	})
}

func GetNotificationService() *NotificationService {
	initServices()
	return notificationService
}

func GetRetentionWorker() *RetentionWorker {
	initServices()
	return retentionWorker
}
