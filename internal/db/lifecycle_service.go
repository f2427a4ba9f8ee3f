package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
)

// DefaultRetention is how long a trashed task stays restorable before the
// sweep removes it for good.
const DefaultRetention = 30 * 24 * time.Hour

// TrashedTask pairs a trashed task with its remaining retention window.
type TrashedTask struct {
	Task     models.Task
	PurgeAt  time.Time
	DaysLeft int
}

// LifecycleService owns the trash state machine: active tasks are soft
// deleted into the trash, restored back, or purged permanently. Purging
// cascades to subtasks, comments and tag links.
type LifecycleService struct {
	db        *gorm.DB
	now       func() time.Time
	Retention time.Duration
}

func NewLifecycleService(gdb *gorm.DB) *LifecycleService {
	return &LifecycleService{db: gdb, now: utcNow, Retention: DefaultRetention}
}

// SoftDelete moves an active task to the trash and logs DELETED.
func (s *LifecycleService) SoftDelete(ownerID, taskID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		task, err := trashScopedTask(tx, ownerID, taskID)
		if err != nil {
			return err
		}
		if task.DeletedAt.Valid {
			return &domain.InvalidStateError{Op: "delete", Reason: "task is already in the trash"}
		}
		if err := tx.Delete(task).Error; err != nil {
			return err
		}
		return appendActivity(tx, ownerID, models.ActionDeleted, models.TargetTask, task.ID,
			fmt.Sprintf("Task moved to trash: %s", task.Title), s.now())
	})
}

// Restore moves a trashed task back to active, clearing deleted_at. Every
// other field keeps its pre-delete value.
func (s *LifecycleService) Restore(ownerID, taskID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		task, err := trashScopedTask(tx, ownerID, taskID)
		if err != nil {
			return err
		}
		if !task.DeletedAt.Valid {
			return &domain.InvalidStateError{Op: "restore", Reason: "task is not in the trash"}
		}
		err = tx.Unscoped().Model(&models.Task{}).
			Where("id = ?", task.ID).
			Update("deleted_at", nil).Error
		if err != nil {
			return err
		}
		return appendActivity(tx, ownerID, models.ActionUpdated, models.TargetTask, task.ID,
			fmt.Sprintf("Task restored: %s", task.Title), s.now())
	})
}

// Purge permanently removes a trashed task. Irreversible.
func (s *LifecycleService) Purge(ownerID, taskID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		task, err := trashScopedTask(tx, ownerID, taskID)
		if err != nil {
			return err
		}
		if !task.DeletedAt.Valid {
			return &domain.InvalidStateError{Op: "purge", Reason: "task must be in the trash first"}
		}
		return purgeTask(tx, task.ID)
	})
}

// BulkRestore restores every listed task as one unit. If any id is missing
// or not trashed, nothing is restored and the returned ConflictError names
// the blocked ids.
func (s *LifecycleService) BulkRestore(ownerID uuid.UUID, taskIDs []uuid.UUID) error {
	return s.bulk("bulk restore", ownerID, taskIDs, func(tx *gorm.DB, task *models.Task) error {
		err := tx.Unscoped().Model(&models.Task{}).
			Where("id = ?", task.ID).
			Update("deleted_at", nil).Error
		if err != nil {
			return err
		}
		return appendActivity(tx, ownerID, models.ActionUpdated, models.TargetTask, task.ID,
			fmt.Sprintf("Task restored: %s", task.Title), s.now())
	})
}

// BulkPurge purges every listed task as one unit, with the same
// all-or-nothing contract as BulkRestore.
func (s *LifecycleService) BulkPurge(ownerID uuid.UUID, taskIDs []uuid.UUID) error {
	return s.bulk("bulk purge", ownerID, taskIDs, func(tx *gorm.DB, task *models.Task) error {
		return purgeTask(tx, task.ID)
	})
}

// bulk checks every target's precondition before touching any of them, so
// a precondition failure rolls back with no partial transition.
func (s *LifecycleService) bulk(op string, ownerID uuid.UUID, taskIDs []uuid.UUID, apply func(*gorm.DB, *models.Task) error) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var tasks []models.Task
		err := tx.Unscoped().
			Where("user_id = ? AND id IN ?", ownerID, taskIDs).
			Find(&tasks).Error
		if err != nil {
			return err
		}

		byID := make(map[uuid.UUID]*models.Task, len(tasks))
		for i := range tasks {
			byID[tasks[i].ID] = &tasks[i]
		}

		var failed []uuid.UUID
		for _, id := range taskIDs {
			task, ok := byID[id]
			if !ok || !task.DeletedAt.Valid {
				failed = append(failed, id)
			}
		}
		if len(failed) > 0 {
			return &domain.ConflictError{Op: op, FailedIDs: failed}
		}

		for _, id := range taskIDs {
			if err := apply(tx, byID[id]); err != nil {
				return err
			}
		}
		return nil
	})
}

// EmptyTrash purges every trashed task owned by the caller.
func (s *LifecycleService) EmptyTrash(ownerID uuid.UUID) (int, error) {
	purged := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tasks []models.Task
		err := tx.Unscoped().
			Where("user_id = ? AND deleted_at IS NOT NULL", ownerID).
			Find(&tasks).Error
		if err != nil {
			return err
		}
		for _, task := range tasks {
			if err := purgeTask(tx, task.ID); err != nil {
				return err
			}
		}
		purged = len(tasks)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

// RetentionSweep purges every trashed task, across all owners, whose
// deleted_at is at least the retention window before now. Idempotent: the
// second run with the same now finds nothing. The deleted_at condition is
// re-checked in the delete statement itself so a task restored after the
// candidate read survives the sweep.
func (s *LifecycleService) RetentionSweep(now time.Time) (int, error) {
	cutoff := now.Add(-s.Retention)
	purged := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tasks []models.Task
		err := tx.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at <= ?", cutoff).
			Find(&tasks).Error
		if err != nil {
			return err
		}
		for _, task := range tasks {
			res := tx.Unscoped().
				Where("id = ? AND deleted_at IS NOT NULL AND deleted_at <= ?", task.ID, cutoff).
				Delete(&models.Task{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue // restored since the read
			}
			if err := purgeChildren(tx, task.ID); err != nil {
				return err
			}
			purged++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

// ListTrash returns the owner's trashed tasks, most recently deleted
// first, with the purge deadline computed per task.
func (s *LifecycleService) ListTrash(ownerID uuid.UUID) ([]TrashedTask, error) {
	var tasks []models.Task
	err := s.db.Unscoped().
		Preload("Tags").
		Preload("Project").
		Where("user_id = ? AND deleted_at IS NOT NULL", ownerID).
		Order("deleted_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]TrashedTask, len(tasks))
	for i, task := range tasks {
		purgeAt := task.DeletedAt.Time.Add(s.Retention)
		daysLeft := int(purgeAt.Sub(now).Hours() / 24)
		if daysLeft < 0 {
			daysLeft = 0
		}
		out[i] = TrashedTask{Task: task, PurgeAt: purgeAt, DaysLeft: daysLeft}
	}
	return out, nil
}

// trashScopedTask loads a task regardless of trash state, owner-checked.
func trashScopedTask(tx *gorm.DB, ownerID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := tx.Unscoped().
		Where("id = ? AND user_id = ?", taskID, ownerID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "task", ID: taskID}
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// purgeTask hard-deletes a task row and everything it owns.
func purgeTask(tx *gorm.DB, taskID uuid.UUID) error {
	if err := purgeChildren(tx, taskID); err != nil {
		return err
	}
	return tx.Unscoped().Where("id = ?", taskID).Delete(&models.Task{}).Error
}

// purgeChildren removes the subtasks, comments and tag links owned by a
// task. Tags themselves survive; only the attachments go.
func purgeChildren(tx *gorm.DB, taskID uuid.UUID) error {
	if err := tx.Where("task_id = ?", taskID).Delete(&models.Subtask{}).Error; err != nil {
		return err
	}
	if err := tx.Where("task_id = ?", taskID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return tx.Where("task_id = ?", taskID).Delete(&models.TaskTag{}).Error
}
