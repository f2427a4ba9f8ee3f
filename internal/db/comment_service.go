package db

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
)

// CommentService manages the notes attached to tasks.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// Add attaches a comment to one of the owner's active tasks.
func (s *CommentService) Add(ownerID, taskID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &domain.ValidationError{Field: "content", Reason: "must not be empty"}
	}

	var comment models.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		task, err := ownedTask(tx, ownerID, taskID)
		if err != nil {
			return err
		}
		comment = models.Comment{TaskID: task.ID, UserID: ownerID, Content: content}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update replaces a comment's content.
func (s *CommentService) Update(ownerID, commentID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &domain.ValidationError{Field: "content", Reason: "must not be empty"}
	}

	var comment *models.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		comment, err = ownedComment(tx, ownerID, commentID)
		if err != nil {
			return err
		}
		comment.Content = content
		return tx.Save(comment).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment.
func (s *CommentService) Delete(ownerID, commentID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		comment, err := ownedComment(tx, ownerID, commentID)
		if err != nil {
			return err
		}
		return tx.Delete(comment).Error
	})
}

func ownedComment(tx *gorm.DB, ownerID, commentID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := tx.
		Joins("JOIN tasks ON tasks.id = comments.task_id").
		Where("comments.id = ? AND tasks.user_id = ? AND tasks.deleted_at IS NULL", commentID, ownerID).
		First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "comment", ID: commentID}
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
