package db

import (
	"fmt"
	"log"

	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/domain/audit"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/notification"
	"github.com/linskybing/form-platform/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}
	log.Println("Database connected")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Models lists every table owned by the service, parents before children.
func Models() []interface{} {
	return []interface{}{
		&user.Role{},
		&user.User{},
		&form.Form{},
		&form.FormSection{},
		&form.FormField{},
		&form.FormFieldOption{},
		&form.UserFormAccess{},
		&form.FormResponse{},
		&form.FormFieldResponse{},
		&notification.Notification{},
		&audit.AuditLog{},
	}
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(Models()...)
}
