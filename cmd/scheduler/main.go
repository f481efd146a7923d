package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/config/db"
	"github.com/linskybing/form-platform/internal/cron"
	"github.com/linskybing/form-platform/internal/migrations"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/email"
)

// Runs the background jobs without the HTTP server. Set RUN_BACKGROUND_JOBS=false on the
// API replicas when this runs.
func main() {
	config.LoadConfig()

	db.Init()
	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, application.Deps{Mailer: email.NewFromConfig()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	window := time.Duration(config.ReminderWindowHours) * time.Hour
	cron.Start(ctx, services, config.AuditRetentionDays, window)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	log.Println("Shutdown signal")
}
