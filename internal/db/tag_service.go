package db

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
)

// TagService maintains tags and the task<->tag association.
type TagService struct {
	db *gorm.DB
}

func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// AddTag resolves name to one of the owner's tags, creating it with
// defaults when missing, and attaches it to the task. Lookup is
// case-insensitive and attaching an already-attached tag is a no-op.
func (s *TagService) AddTag(ownerID, taskID uuid.UUID, name string) (*models.Tag, error) {
	var resolved *models.Tag
	err := s.db.Transaction(func(tx *gorm.DB) error {
		task, err := ownedTask(tx, ownerID, taskID)
		if err != nil {
			return err
		}
		tag, err := findOrCreateTag(tx, ownerID, name)
		if err != nil {
			return err
		}
		if tag == nil {
			return &domain.ValidationError{Field: "tag", Reason: "name must not be empty"}
		}
		if err := attachTag(tx, task.ID, tag.ID); err != nil {
			return err
		}
		resolved = tag
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// RemoveTag detaches a tag from a task. Absent attachments are a no-op,
// but the task and tag themselves must exist and belong to the caller.
func (s *TagService) RemoveTag(ownerID, taskID, tagID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := ownedTask(tx, ownerID, taskID); err != nil {
			return err
		}
		if _, err := ownedTag(tx, ownerID, tagID); err != nil {
			return err
		}
		return tx.Where("task_id = ? AND tag_id = ?", taskID, tagID).
			Delete(&models.TaskTag{}).Error
	})
}

// Delete removes a tag entirely, detaching it from every task. The tasks
// survive.
func (s *TagService) Delete(ownerID, tagID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		tag, err := ownedTag(tx, ownerID, tagID)
		if err != nil {
			return err
		}
		if err := tx.Where("tag_id = ?", tag.ID).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
}

// Update changes a tag's color or icon; empty strings keep the current
// value.
func (s *TagService) Update(ownerID, tagID uuid.UUID, color, icon string) (*models.Tag, error) {
	var tag *models.Tag
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		tag, err = ownedTag(tx, ownerID, tagID)
		if err != nil {
			return err
		}
		if color != "" {
			tag.Color = color
		}
		if icon != "" {
			tag.Icon = icon
		}
		return tx.Save(tag).Error
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// List returns the owner's tags ordered by name.
func (s *TagService) List(ownerID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.
		Where("user_id = ?", ownerID).
		Order("LOWER(name) ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// findOrCreateTag looks up name case-insensitively among the owner's tags
// and creates it with default color/icon when absent. A blank name yields
// nil without error so callers looping over parsed input can skip it.
func findOrCreateTag(tx *gorm.DB, ownerID uuid.UUID, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	var tag models.Tag
	err := tx.Where("user_id = ? AND LOWER(name) = ?", ownerID, strings.ToLower(name)).
		First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = models.Tag{
		UserID: ownerID,
		Name:   name,
		Color:  models.DefaultTagColor,
		Icon:   models.DefaultTagIcon,
	}
	if err := tx.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// attachTag links a tag to a task, idempotently.
func attachTag(tx *gorm.DB, taskID, tagID uuid.UUID) error {
	var existing models.TaskTag
	err := tx.Where("task_id = ? AND tag_id = ?", taskID, tagID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&models.TaskTag{TaskID: taskID, TagID: tagID}).Error
}

func ownedTag(tx *gorm.DB, ownerID, tagID uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := tx.Where("id = ? AND user_id = ?", tagID, ownerID).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "tag", ID: tagID}
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}
