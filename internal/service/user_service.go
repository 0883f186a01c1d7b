package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "shareprompts/internal/errors"
	"shareprompts/internal/model"
	"shareprompts/internal/repository"
)

// UserService exposes user provisioning and lookup.
type UserService interface {
	Provision(ctx context.Context, email, username, image string) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService on top of the repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Provision returns the user registered under email, creating one on first
// sight. The identity provider has already authenticated the caller; this
// only mirrors the account locally.
func (s *userService) Provision(ctx context.Context, email, username, image string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &model.User{
		Email:    email,
		Username: username,
		Image:    image,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
