package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultProjectColor = "#667eea"

// Project groups tasks. Deleting a project never deletes its tasks; their
// project reference is cleared instead.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `gorm:"default:#667eea" json:"color"`
	CreatedAt   time.Time `json:"created_at"`

	Tasks []Task `gorm:"foreignKey:ProjectID" json:"-"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
