package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity actions.
const (
	ActionCreated   = "CREATED"
	ActionUpdated   = "UPDATED"
	ActionCompleted = "COMPLETED"
	ActionDeleted   = "DELETED"
)

// Activity target types.
const (
	TargetTask    = "Task"
	TargetProject = "Project"
)

// Activity is one append-only log entry. Entries are never updated or
// removed by normal operation; readers project them into timelines.
type Activity struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Action     string    `gorm:"not null" json:"action"`
	TargetType string    `gorm:"not null" json:"target_type"`
	TargetID   uuid.UUID `gorm:"type:uuid" json:"target_id"`
	Details    string    `json:"details"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
