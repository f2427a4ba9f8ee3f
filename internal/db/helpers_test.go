package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/models"
)

// testStore opens a fresh in-memory database per test.
func testStore(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { Close(gdb) })
	return gdb
}

func testUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()
	user, err := NewUserService(gdb).Ensure(username)
	require.NoError(t, err)
	return user
}

// fixedClock pins a service clock for deterministic timestamps.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// mustCreateTask creates a task directly through the service.
func mustCreateTask(t *testing.T, gdb *gorm.DB, owner *models.User, req CreateTaskRequest) *models.Task {
	t.Helper()
	task, err := NewTaskService(gdb).Create(owner.ID, req)
	require.NoError(t, err)
	return task
}

// trashTask soft-deletes a task and optionally backdates deleted_at.
func trashTask(t *testing.T, gdb *gorm.DB, owner *models.User, task *models.Task, deletedAt *time.Time) {
	t.Helper()
	require.NoError(t, NewLifecycleService(gdb).SoftDelete(owner.ID, task.ID))
	if deletedAt != nil {
		err := gdb.Unscoped().Model(&models.Task{}).
			Where("id = ?", task.ID).
			Update("deleted_at", *deletedAt).Error
		require.NoError(t, err)
	}
}
