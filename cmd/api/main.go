package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/internal/api/handlers"
	"github.com/linskybing/form-platform/internal/api/middleware"
	"github.com/linskybing/form-platform/internal/api/routes"
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/config/db"
	"github.com/linskybing/form-platform/internal/cron"
	"github.com/linskybing/form-platform/internal/migrations"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/email"
	"github.com/linskybing/form-platform/pkg/storage"
	"github.com/linskybing/form-platform/pkg/validation"
	"github.com/linskybing/form-platform/pkg/ws"
)

// @title Form Platform API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	db.Init()
	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := validation.Register(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var folders storage.FolderCreator = storage.DisabledFolders{}
	if client, err := storage.InitMinio(ctx); err != nil {
		log.Printf("Warning: file storage unavailable, upload folders disabled: %v", err)
	} else {
		folders = storage.NewMinioFolders(client, config.MinioBucket)
	}

	hub := ws.NewHub()
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, application.Deps{
		Mailer:    email.NewFromConfig(),
		Folders:   folders,
		Publisher: hub,
	})

	if config.RunBackgroundJobs {
		cron.Start(ctx, services, config.AuditRetentionDays, time.Duration(config.ReminderWindowHours)*time.Hour)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, handlers.New(services, repos, hub))

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
