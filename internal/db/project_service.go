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

// ProjectService maintains projects and the task->project reference.
type ProjectService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb, now: utcNow}
}

// Create stores a new project and logs a CREATED entry for it.
func (s *ProjectService) Create(ownerID uuid.UUID, name, description, color string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if color == "" {
		color = models.DefaultProjectColor
	}

	project := models.Project{
		UserID:      ownerID,
		Name:        name,
		Description: description,
		Color:       color,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		return appendActivity(tx, ownerID, models.ActionCreated, models.TargetProject, project.ID,
			fmt.Sprintf("Project created: %s", project.Name), s.now())
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update patches a project's fields; empty strings keep current values.
func (s *ProjectService) Update(ownerID, projectID uuid.UUID, name, description, color string) (*models.Project, error) {
	var project *models.Project
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		project, err = ownedProject(tx, ownerID, projectID)
		if err != nil {
			return err
		}
		if name = strings.TrimSpace(name); name != "" {
			project.Name = name
		}
		if description != "" {
			project.Description = description
		}
		if color != "" {
			project.Color = color
		}
		return tx.Save(project).Error
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project. Tasks that referenced it, trashed ones
// included, keep living with the reference cleared.
func (s *ProjectService) Delete(ownerID, projectID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		project, err := ownedProject(tx, ownerID, projectID)
		if err != nil {
			return err
		}
		err = tx.Unscoped().Model(&models.Task{}).
			Where("project_id = ?", project.ID).
			Update("project_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
}

// List returns the owner's projects ordered by name.
func (s *ProjectService) List(ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Where("user_id = ?", ownerID).
		Order("LOWER(name) ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// SetProject points a task at one of the owner's projects, or clears the
// reference when projectID is nil.
func (s *ProjectService) SetProject(ownerID, taskID uuid.UUID, projectID *uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		task, err := ownedTask(tx, ownerID, taskID)
		if err != nil {
			return err
		}
		if projectID != nil {
			if _, err := ownedProject(tx, ownerID, *projectID); err != nil {
				return err
			}
		}
		return tx.Model(task).Update("project_id", projectID).Error
	})
}

// AssignTasks points every listed task at the project as one unit. Any id
// that is missing, trashed, or another owner's blocks the whole call and
// the returned ConflictError names it.
func (s *ProjectService) AssignTasks(ownerID uuid.UUID, taskIDs []uuid.UUID, projectID uuid.UUID) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := ownedProject(tx, ownerID, projectID); err != nil {
			return err
		}

		var tasks []models.Task
		err := tx.Where("user_id = ? AND id IN ?", ownerID, taskIDs).Find(&tasks).Error
		if err != nil {
			return err
		}
		found := make(map[uuid.UUID]bool, len(tasks))
		for _, t := range tasks {
			found[t.ID] = true
		}

		var failed []uuid.UUID
		for _, id := range taskIDs {
			if !found[id] {
				failed = append(failed, id)
			}
		}
		if len(failed) > 0 {
			return &domain.ConflictError{Op: "assign to project", FailedIDs: failed}
		}

		return tx.Model(&models.Task{}).
			Where("user_id = ? AND id IN ?", ownerID, taskIDs).
			Update("project_id", projectID).Error
	})
}

func ownedProject(tx *gorm.DB, ownerID, projectID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := tx.Where("id = ? AND user_id = ?", projectID, ownerID).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "project", ID: projectID}
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}
