package database

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/yukikurage/taskboard/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the state_blobs table.
func Migrate(db *gorm.DB) error {
	log.Debug("Running database migrations...")
	if err := db.AutoMigrate(&models.StateBlob{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Debug("Database migrations completed")
	return nil
}
