package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultTagColor = "#667eea"
	DefaultTagIcon  = "tag"
)

// Tag labels tasks. Names are unique per owner, compared case-insensitively;
// lookups go through LOWER(name) so "Work" and "work" resolve to one tag.
type Tag struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_tags_owner_name,unique" json:"user_id"`
	Name   string    `gorm:"not null;index:idx_tags_owner_name,unique" json:"name"`
	Color  string    `gorm:"default:#667eea" json:"color"`
	Icon   string    `gorm:"default:tag" json:"icon"`

	Tasks []Task `gorm:"many2many:task_tags;" json:"-"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TaskTag is the join table for the many-to-many relationship.
type TaskTag struct {
	TaskID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}
