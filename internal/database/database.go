package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arlen/habitledger-api/internal/config"
	"github.com/arlen/habitledger-api/internal/models"
)

// Connect opens the database and returns the handle. The handle is
// constructed once at startup and passed into every component that needs it;
// nothing in this package holds process-wide state.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Unique violations must surface as gorm.ErrDuplicatedKey on both
		// drivers so the toggle can recover from create races.
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.Completion{},
	)
}
