package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates the process-wide database connection. TranslateError is on
// so unique-constraint violations surface as gorm.ErrDuplicatedKey instead
// of driver-specific errors.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates the identities, sessions and beauty
// profile tables. The unique indexes on users.email and sessions.user_id
// are what close the concurrent-registration and concurrent-refresh races;
// they must exist before the service takes traffic.
func AutoMigrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
