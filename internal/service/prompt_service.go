package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "shareprompts/internal/errors"
	"shareprompts/internal/model"
	"shareprompts/internal/repository"
)

// PromptService exposes the prompt CRUD operations.
type PromptService interface {
	ListAll(ctx context.Context) ([]model.Prompt, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Prompt, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Prompt, error)
	Create(ctx context.Context, creatorID uuid.UUID, text, tag string) (*model.Prompt, error)
	Update(ctx context.Context, id uuid.UUID, text, tag string) (*model.Prompt, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type promptService struct {
	repo repository.PromptRepository
}

// NewPromptService builds a PromptService on top of the repository.
func NewPromptService(repo repository.PromptRepository) PromptService {
	return &promptService{repo: repo}
}

func (s *promptService) ListAll(ctx context.Context) ([]model.Prompt, error) {
	return s.repo.ListWithCreators(ctx)
}

func (s *promptService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Prompt, error) {
	return s.repo.ListByCreator(ctx, creatorID)
}

func (s *promptService) Get(ctx context.Context, id uuid.UUID) (*model.Prompt, error) {
	prompt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPromptNotFound
		}
		return nil, err
	}
	return prompt, nil
}

func (s *promptService) Create(ctx context.Context, creatorID uuid.UUID, text, tag string) (*model.Prompt, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(tag) == "" {
		return nil, apperrors.ErrMissingFields
	}
	prompt := &model.Prompt{
		Text:      text,
		Tag:       tag,
		CreatorID: creatorID,
	}
	if err := s.repo.Create(ctx, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

func (s *promptService) Update(ctx context.Context, id uuid.UUID, text, tag string) (*model.Prompt, error) {
	prompt, err := s.repo.Update(ctx, id, text, tag)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPromptNotFound
		}
		return nil, err
	}
	return prompt, nil
}

func (s *promptService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPromptNotFound
		}
		return err
	}
	return nil
}
