package db

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
)

// SubtaskService manages the checklist items under a task.
type SubtaskService struct {
	db *gorm.DB
}

func NewSubtaskService(gdb *gorm.DB) *SubtaskService {
	return &SubtaskService{db: gdb}
}

// Create adds a subtask to one of the owner's active tasks.
func (s *SubtaskService) Create(ownerID, taskID uuid.UUID, title string) (*models.Subtask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	var subtask models.Subtask
	err := s.db.Transaction(func(tx *gorm.DB) error {
		task, err := ownedTask(tx, ownerID, taskID)
		if err != nil {
			return err
		}
		subtask = models.Subtask{TaskID: task.ID, Title: title}
		return tx.Create(&subtask).Error
	})
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

// Rename changes a subtask's title.
func (s *SubtaskService) Rename(ownerID, subtaskID uuid.UUID, title string) (*models.Subtask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	var subtask *models.Subtask
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		subtask, err = ownedSubtask(tx, ownerID, subtaskID)
		if err != nil {
			return err
		}
		subtask.Title = title
		return tx.Save(subtask).Error
	})
	if err != nil {
		return nil, err
	}
	return subtask, nil
}

// Toggle flips a subtask's completed flag. The parent task's own completed
// flag is untouched: subtasks record progress, they do not finish the task.
func (s *SubtaskService) Toggle(ownerID, subtaskID uuid.UUID) (*models.Subtask, error) {
	var subtask *models.Subtask
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		subtask, err = ownedSubtask(tx, ownerID, subtaskID)
		if err != nil {
			return err
		}
		subtask.Completed = !subtask.Completed
		return tx.Save(subtask).Error
	})
	if err != nil {
		return nil, err
	}
	return subtask, nil
}

// Delete removes a subtask.
func (s *SubtaskService) Delete(ownerID, subtaskID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		subtask, err := ownedSubtask(tx, ownerID, subtaskID)
		if err != nil {
			return err
		}
		return tx.Delete(subtask).Error
	})
}

// ownedSubtask resolves a subtask through its parent task's owner. A
// subtask under another owner's task reads as not found.
func ownedSubtask(tx *gorm.DB, ownerID, subtaskID uuid.UUID) (*models.Subtask, error) {
	var subtask models.Subtask
	err := tx.
		Joins("JOIN tasks ON tasks.id = subtasks.task_id").
		Where("subtasks.id = ? AND tasks.user_id = ? AND tasks.deleted_at IS NULL", subtaskID, ownerID).
		First(&subtask).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "subtask", ID: subtaskID}
	}
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}
