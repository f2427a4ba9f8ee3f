// Package db implements the entity store and the services that mutate it:
// task CRUD, the trash lifecycle, tag/project/subtask/comment associations,
// the activity log, and the owner-scoped snapshot queries that feed the
// pure filter/stats/activity engines.
package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskwell/taskwell/internal/models"
)

// Open connects to the SQLite database at path and runs migrations.
// ":memory:" gives an in-memory store for tests.
func Open(path string) (*gorm.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(gdb); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return gdb, nil
}

// migrate creates/updates the database schema.
func migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Tag{},
		&models.Task{},
		&models.TaskTag{},
		&models.Subtask{},
		&models.Comment{},
		&models.Activity{},
	)
}

// Close closes the underlying connection.
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// utcNow is the default clock for services; tests swap it out.
func utcNow() time.Time {
	return time.Now().UTC()
}
