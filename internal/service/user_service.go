package service

import (
	"context"
	"errors"
	"strings"

	"smart-sales-api/internal/model"
	"smart-sales-api/internal/repository"
	"smart-sales-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService exposes staff identities read-only over HTTP, plus the
// administrative operations used by the management CLI.
type UserService interface {
	List(ctx context.Context) ([]model.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.UserResponse, error)
	CreateSuperuser(ctx context.Context, username, email, password string) (*model.UserResponse, error)
	ChangePassword(ctx context.Context, username, password string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fromRepo("User", err)
	}
	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("User", err)
	}
	response := user.ToResponse()
	return &response, nil
}

// CreateSuperuser creates an active staff superuser. The password policy
// applies here as it does for self-registration.
func (s *userService) CreateSuperuser(ctx context.Context, username, email, password string) (*model.UserResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ValidationError("username is required")
	}
	if password == "" {
		return nil, ValidationError("password is required")
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, InternalError("Failed to check username", err)
	}
	if exists {
		return nil, ValidationError("Username already exists")
	}

	if messages := validator.ValidatePassword(password, username, email); len(messages) > 0 {
		return nil, ValidationError("Password does not meet requirements", messages...)
	}

	user := &model.User{
		Username:    username,
		Email:       email,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, InternalError("Failed to hash password", err)
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fromRepo("User", err)
	}

	response := user.ToResponse()
	return &response, nil
}

func (s *userService) ChangePassword(ctx context.Context, username, password string) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError("user '" + username + "' does not exist")
	}
	if err != nil {
		return InternalError("Failed to load user", err)
	}

	if messages := validator.ValidatePassword(password, user.Username, user.Email, user.FirstName, user.LastName); len(messages) > 0 {
		return ValidationError("Password does not meet requirements", messages...)
	}

	if err := user.SetPassword(password); err != nil {
		return InternalError("Failed to hash password", err)
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, user.Password); err != nil {
		return InternalError("Failed to update password", err)
	}
	return nil
}
