package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
)

// QueryService produces owner-scoped snapshots for the pure read engines.
// It never mutates anything; each call is a single consistent read.
type QueryService struct {
	db *gorm.DB
}

func NewQueryService(gdb *gorm.DB) *QueryService {
	return &QueryService{db: gdb}
}

// ActiveTasks snapshots the owner's active tasks with tags and project
// loaded, in creation order. Trashed tasks never appear here.
func (s *QueryService) ActiveTasks(ownerID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.
		Preload("Tags").
		Preload("Project").
		Preload("Subtasks").
		Preload("Comments").
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ResolveTaskID expands an id prefix to the matching task id so callers
// don't have to type full UUIDs. Set includeTrashed to resolve against
// trashed tasks too. An ambiguous prefix is rejected.
func (s *QueryService) ResolveTaskID(ownerID uuid.UUID, prefix string, includeTrashed bool) (uuid.UUID, error) {
	if id, err := uuid.Parse(prefix); err == nil {
		return id, nil
	}
	if len(prefix) < 4 {
		return uuid.Nil, &domain.ValidationError{Field: "task id", Reason: "prefix must be at least 4 characters"}
	}

	tx := s.db
	if includeTrashed {
		tx = tx.Unscoped()
	}

	var ids []uuid.UUID
	err := tx.Model(&models.Task{}).
		Where("user_id = ? AND id LIKE ?", ownerID, prefix+"%").
		Limit(2).
		Pluck("id", &ids).Error
	if err != nil {
		return uuid.Nil, err
	}
	switch len(ids) {
	case 0:
		return uuid.Nil, &domain.NotFoundError{Entity: "task", ID: uuid.Nil}
	case 1:
		return ids[0], nil
	}
	return uuid.Nil, &domain.ValidationError{Field: "task id", Reason: "prefix matches more than one task"}
}
