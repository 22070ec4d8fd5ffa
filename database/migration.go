package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/logisticsim/models"
)

// AutoMigrate creates or updates all tables in dependency order.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}

// Reset drops every table and recreates the schema from scratch. This is
// destructive and non-idempotent by design: the generator always starts
// from a clean slate rather than resuming a partial history.
func Reset(db *gorm.DB) error {
	logrus.Warn("database_reset_started")

	allModels := models.AllModels()
	// Drop children before parents
	for i := len(allModels) - 1; i >= 0; i-- {
		model := allModels[i]
		if !db.Migrator().HasTable(model) {
			continue
		}
		if err := db.Migrator().DropTable(model); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", model, err)
		}
	}

	if err := AutoMigrate(db); err != nil {
		return err
	}

	logrus.Warn("database_reset_completed")
	return nil
}

// CheckConnection verifies the database connection is alive.
func CheckConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
