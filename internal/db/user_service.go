package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
)

// UserService resolves the owner identity the rest of the services scope
// by. Authentication happens upstream; here a username is enough.
type UserService struct {
	db *gorm.DB
}

func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Ensure returns the user with the given username, creating it on first
// use.
func (s *UserService) Ensure(username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &domain.ValidationError{Field: "username", Reason: "must not be empty"}
	}

	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{Username: username, DisplayName: username}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
