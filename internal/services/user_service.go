package services

import (
	"context"
	"errors"

	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages counter operator accounts.
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns all users. Passwords never appear in the response type.
func (s *UserService) List(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, nil
}

// Create registers a user with a bcrypt-hashed password.
func (s *UserService) Create(ctx context.Context, username, password, role string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, NewValidationError("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:          username,
		EncryptedPassword: string(hash),
		Role:              role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces a user's password. Allowed for admins or for the
// user changing their own; the handler enforces who may call this.
func (s *UserService) ChangePassword(ctx context.Context, id uint, newPassword string) error {
	if newPassword == "" {
		return NewValidationError("new password is required")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.EncryptedPassword = string(hash)
	return s.repo.Update(ctx, user)
}
