package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
)

// CreateTaskRequest holds the data needed to create a new task.
type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    models.Priority
	Important   bool
	DueDate     *time.Time
	ProjectID   *uuid.UUID
	Tags        []string
}

// UpdateTaskRequest is a partial patch; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	Completed   *bool
	Important   *bool
	DueDate     *time.Time
	ClearDue    bool
}

// TaskService owns task creation and field mutation, and writes the
// matching activity entries.
type TaskService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTaskService(gdb *gorm.DB) *TaskService {
	return &TaskService{db: gdb, now: utcNow}
}

// Create validates and stores a new active task, attaching any named tags
// and logging a CREATED entry.
func (s *TaskService) Create(ownerID uuid.UUID, req CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if priority != models.PriorityLow && priority != models.PriorityMedium && priority != models.PriorityHigh {
		return nil, &domain.ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", priority)}
	}

	task := models.Task{
		UserID:      ownerID,
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		Important:   req.Important,
		DueDate:     req.DueDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.ProjectID != nil {
			var project models.Project
			err := tx.Where("id = ? AND user_id = ?", *req.ProjectID, ownerID).First(&project).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "project", ID: *req.ProjectID}
			}
			if err != nil {
				return err
			}
			task.ProjectID = req.ProjectID
		}

		if err := tx.Create(&task).Error; err != nil {
			return err
		}

		for _, name := range req.Tags {
			tag, err := findOrCreateTag(tx, ownerID, name)
			if err != nil {
				return err
			}
			if tag == nil {
				continue
			}
			if err := attachTag(tx, task.ID, tag.ID); err != nil {
				return err
			}
		}

		return appendActivity(tx, ownerID, models.ActionCreated, models.TargetTask, task.ID,
			fmt.Sprintf("Task created: %s", task.Title), s.now())
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ownerID, task.ID)
}

// Update applies a partial patch to an active task. Flipping Completed to
// true logs COMPLETED instead of the generic UPDATED, mirroring how the
// activity feed distinguishes finishing a task from editing one.
func (s *TaskService) Update(ownerID, taskID uuid.UUID, req UpdateTaskRequest) (*models.Task, error) {
	var updated *models.Task
	err := s.db.Transaction(func(tx *gorm.DB) error {
		task, err := ownedTask(tx, ownerID, taskID)
		if err != nil {
			return err
		}

		wasCompleted := task.Completed

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return &domain.ValidationError{Field: "title", Reason: "must not be empty"}
			}
			task.Title = title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Priority != nil {
			p := *req.Priority
			if p != models.PriorityLow && p != models.PriorityMedium && p != models.PriorityHigh {
				return &domain.ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", p)}
			}
			task.Priority = p
		}
		if req.Important != nil {
			task.Important = *req.Important
		}
		if req.ClearDue {
			task.DueDate = nil
		} else if req.DueDate != nil {
			task.DueDate = req.DueDate
		}
		if req.Completed != nil {
			task.Completed = *req.Completed
			if *req.Completed && !wasCompleted {
				at := s.now()
				task.CompletedAt = &at
			} else if !*req.Completed {
				task.CompletedAt = nil
			}
		}

		if err := tx.Save(task).Error; err != nil {
			return err
		}

		action := models.ActionUpdated
		details := fmt.Sprintf("Task updated: %s", task.Title)
		if task.Completed && !wasCompleted {
			action = models.ActionCompleted
			details = fmt.Sprintf("Task completed: %s", task.Title)
		}
		if err := appendActivity(tx, ownerID, action, models.TargetTask, task.ID, details, s.now()); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ownerID, updated.ID)
}

// Get loads one active task with its tags, project, subtasks and comments.
func (s *TaskService) Get(ownerID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := s.db.
		Preload("Tags").
		Preload("Project").
		Preload("Subtasks").
		Preload("Comments").
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

// ownedTask fetches an active task scoped to its owner, for use inside a
// transaction. Trashed tasks and other owners' tasks both come back as
// NotFoundError.
func ownedTask(tx *gorm.DB, ownerID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := tx.Where("id = ? AND user_id = ?", taskID, ownerID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "task", ID: taskID}
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}
