package database

import (
	"fmt"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		return nil, err
	}
	db, err := Open(dialector, resolveLogLevel(cfg))
	if err != nil {
		return nil, err
	}
	if cfg.Database.Driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("resolve sql db: %w", err)
		}
		// sqlite allows one writer; an in-memory database also lives in a
		// single connection
		sqlDB.SetMaxOpenConns(1)
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return db, nil
}

// EnsureSchema applies database migration in a short-lived setup connection.
func EnsureSchema(cfg *config.AppConfig) error {
	db, err := Connect(cfg, false)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("resolve sql db: %w", err)
	}
	defer sqlDB.Close()

	if err := Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Dialector picks the gorm dialect for the configured driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn := cfg.DSNValue()
	switch cfg.Driver {
	case config.DriverMySQL:
		return mysql.New(mysql.Config{
			DSN:               dsn,
			DefaultStringSize: 191,
		}), nil
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects through dialector and registers the profile/skill join model.
func Open(dialector gorm.Dialector, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := db.SetupJoinTable(&models.UserProfileModel{}, "Skills", &models.UserProfileSkill{}); err != nil {
		return nil, fmt.Errorf("setup join table: %w", err)
	}
	if db.Dialector.Name() == config.DriverSQLite {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}
	return db, nil
}

// Migrate creates or updates the tables of every entity and the
// user_profile_skills junction table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

func resolveLogLevel(cfg *config.AppConfig) logger.LogLevel {
	switch cfg.Database.LogLevel {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	}
	if cfg.IsDev() {
		return logger.Info
	}
	return logger.Warn
}
