// Package database owns connection setup and schema management for the
// users table. The *gorm.DB handle is constructed here and passed down
// explicitly; there is no package-level connection state.
package database

import (
	"fmt"
	"time"

	"contactform/internal/config"
	"contactform/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL connection pool. TranslateError is enabled so
// repositories can detect duplicate-key violations without inspecting driver
// error codes.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Bounded pool: excess requests queue on connection acquisition
	// rather than failing immediately.
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// Migrate ensures the users table and its indexes exist. Idempotent and
// never destructive; safe to run at every startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	return nil
}

// Reset drops and recreates the users table, discarding all data. Meant for
// development resets only; the running service never calls this.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&models.User{}); err != nil {
		return fmt.Errorf("failed to drop users table: %w", err)
	}
	return Migrate(db)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
