package notifications_services

import (
	"fmt"
	"log/slog"

	"matchme/internal/config"

	"github.com/robfig/cron/v3"
)

type RetentionWorker struct {
	notificationService *NotificationService
	schedule            string
	cronScheduler       *cron.Cron
	logger              *slog.Logger
}

func NewRetentionWorker(
	notificationService *NotificationService,
	schedule string,
	logger *slog.Logger,
) *RetentionWorker {
	return &RetentionWorker{
		notificationService: notificationService,
		schedule:            schedule,
		logger:              logger,
	}
}

func (w *RetentionWorker) Start() error {
	w.cronScheduler = cron.New()

	if _, err := w.cronScheduler.AddFunc(w.schedule, w.RunOnce); err != nil {
		return fmt.Errorf("invalid notification cleanup schedule %q: %w", w.schedule, err)
	}

	w.cronScheduler.Start()
	w.logger.Info("Notification retention worker started", slog.String("schedule", w.schedule))

	return nil
}

// Stop waits for a running cleanup to finish.
func (w *RetentionWorker) Stop() {
	if w.cronScheduler == nil {
		return
	}

	<-w.cronScheduler.Stop().Done()
	w.logger.Info("Notification retention worker stopped")
}

func (w *RetentionWorker) RunOnce() {
	if config.IsShouldShutdown() {
		return
	}

	deleted, err := w.notificationService.CleanupReadNotifications()
	if err != nil {
		w.logger.Error("Notification retention cleanup failed", "error", err)
		return
	}

	w.logger.Info("Notification retention cleanup completed", slog.Int64("deleted", deleted))
}
