package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alexdelx20/WeddingDream/internal/models"
)

func New(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WeddingSettings{},
		&models.Task{},
		&models.BudgetCategory{},
		&models.Vendor{},
		&models.Guest{},
		&models.TimelineEvent{},
		&models.HelpMessage{},
	)
}
