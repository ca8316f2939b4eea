package database

import (
	"task-manager-bot/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the SQLite database and runs migrations. A failure here is
// fatal for startup, so it is returned rather than handled.
func InitDB(path string, log *zap.Logger) error {
	var err error

	// glebarez/sqlite is a pure Go driver (no CGO required). Foreign keys
	// are off by default in SQLite and must be enabled for the
	// comments.task_id cascade to work.
	dsn := path + "?_pragma=foreign_keys(1)"
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	// Keep the connection pool small; SQLite serializes writers anyway.
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Comment{},
	); err != nil {
		return err
	}

	log.Info("database connected and migrated", zap.String("path", path))
	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// Close releases the underlying connections. Called on shutdown.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
