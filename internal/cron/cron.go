package cron

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/form-platform/internal/application"
)

type Reminder interface {
	SendDeadlineReminders(ctx context.Context, window time.Duration) (int, error)
}

type Cleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

func StartCleanupTask(ctx context.Context, auditService Cleaner, retentionDays int) {
	go func() {
		log.Printf("Starting background cleanup task (retention: %d days)", retentionDays)
		runCleanup(auditService, retentionDays)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Println("Running scheduled audit log cleanup...")
				runCleanup(auditService, retentionDays)
			}
		}
	}()
}

func runCleanup(auditService Cleaner, retentionDays int) {
	n, err := auditService.CleanupOldLogs(retentionDays)
	if err != nil {
		log.Printf("Failed to cleanup old audit logs: %v", err)
		return
	}
	log.Printf("Audit log cleanup removed %d entries", n)
}

// StartReminderTask checks hourly for tasks whose deadline falls within window.
func StartReminderTask(ctx context.Context, reminder Reminder, window time.Duration) {
	go func() {
		log.Printf("Starting deadline reminder task (window: %s)", window)
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			RunReminders(ctx, reminder, window)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func RunReminders(ctx context.Context, reminder Reminder, window time.Duration) {
	n, err := reminder.SendDeadlineReminders(ctx, window)
	if err != nil {
		log.Printf("Deadline reminders failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Sent deadline reminders for %d tasks", n)
	}
}

// Start launches every background job for svc.
func Start(ctx context.Context, svc *application.Services, retentionDays int, window time.Duration) {
	StartCleanupTask(ctx, svc.Audit, retentionDays)
	StartReminderTask(ctx, svc.Assignment, window)
}
