package database

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/glebarez/sqlite"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// Open connects to the configured database driver using GORM and verifies
// the connection with a bounded exponential backoff.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Connection pool settings
	if cfg.Database.Driver == "sqlite" {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.Database.ConnectRetries)
	notify := func(err error, wait time.Duration) {
		if log != nil {
			log.Warn("database ping failed, retrying",
				zap.Error(err),
				zap.Duration("wait", wait),
			)
		}
	}
	if err := backoff.RetryNotify(sqlDB.Ping, policy, notify); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if log != nil {
		log.Info("database connected",
			zap.String("driver", cfg.Database.Driver),
		)
	}
	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		return sqlite.Open(cfg.GetDatabaseDSN()), nil
	case "postgres":
		return postgres.Open(cfg.GetDatabaseDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Migrate creates the schema if it does not exist yet and returns the
// number of migrations applied
func Migrate(db *gorm.DB, driver string) (int, error) {
	return execMigrations(db, driver, migrate.Up)
}

// Rollback reverts every applied migration
func Rollback(db *gorm.DB, driver string) (int, error) {
	return execMigrations(db, driver, migrate.Down)
}

func execMigrations(db *gorm.DB, driver string, dir migrate.MigrationDirection) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate: %w", err)
	}

	dialect, source, err := migrationsFor(driver)
	if err != nil {
		return 0, err
	}

	n, err := migrate.Exec(sqlDB, dialect, source, dir)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migration: %w", err)
	}
	return n, nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
