package db

import (
	"fmt"
	"log"

	"github.com/linskybing/apply-service/internal/config"
	"github.com/linskybing/apply-service/internal/domain/apply"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := DB.AutoMigrate(&apply.Application{}); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB injects an already opened handle, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
