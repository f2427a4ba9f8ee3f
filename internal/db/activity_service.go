package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/models"
)

// appendActivity writes one log entry inside the caller's transaction so a
// rolled-back mutation never leaves a stray entry behind.
func appendActivity(tx *gorm.DB, userID uuid.UUID, action, targetType string, targetID uuid.UUID, details string, at time.Time) error {
	entry := models.Activity{
		UserID:     userID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
		Timestamp:  at,
	}
	return tx.Create(&entry).Error
}

// ActivityService reads the append-only activity log.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(gdb *gorm.DB) *ActivityService {
	return &ActivityService{db: gdb}
}

// List returns the owner's activity entries, newest first.
func (s *ActivityService) List(ownerID uuid.UUID) ([]models.Activity, error) {
	var entries []models.Activity
	err := s.db.
		Where("user_id = ?", ownerID).
		Order("timestamp DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CompletionTimes returns the timestamps of every COMPLETED entry for the
// owner. Statistics that need all-history completion dates (weekday chart)
// read these rather than task rows, since completed tasks may since have
// been trashed or toggled back.
func (s *ActivityService) CompletionTimes(ownerID uuid.UUID) ([]time.Time, error) {
	var entries []models.Activity
	err := s.db.
		Where("user_id = ? AND action = ?", ownerID, models.ActionCompleted).
		Order("timestamp ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	times := make([]time.Time, len(entries))
	for i, e := range entries {
		times[i] = e.Timestamp
	}
	return times, nil
}
