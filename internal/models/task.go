package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority is the three-valued task priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes user input to a Priority. Accepts the enum
// names or 1/2/3 shortcuts; returns false for anything else.
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "low", "1":
		return PriorityLow, true
	case "medium", "med", "2":
		return PriorityMedium, true
	case "high", "3":
		return PriorityHigh, true
	}
	return "", false
}

// Rank orders priorities for sorting, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Task represents a todo item. A non-zero DeletedAt means the task is in
// the trash: gorm's default scope hides it from every normal query, which
// is exactly the active-view invariant.
type Task struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `gorm:"default:medium" json:"priority"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	Important   bool       `gorm:"default:false" json:"important"`
	DueDate     *time.Time `json:"due_date"`
	ProjectID   *uuid.UUID `gorm:"type:uuid" json:"project_id"`

	// Relationships
	Project  *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Tags     []Tag     `gorm:"many2many:task_tags;" json:"tags"`
	Subtasks []Subtask `gorm:"foreignKey:TaskID" json:"subtasks"`
	Comments []Comment `gorm:"foreignKey:TaskID" json:"comments"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tagID uuid.UUID) bool {
	for _, tag := range t.Tags {
		if tag.ID == tagID {
			return true
		}
	}
	return false
}

// Subtask is a checklist item under a task. Completing subtasks never
// completes the parent task.
type Subtask struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	Title     string    `gorm:"not null" json:"title"`
	Completed bool      `gorm:"default:false" json:"completed"`
}

func (s *Subtask) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
