package service

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/chc-hub/api/pkg/utils"
	"github.com/google/uuid"
)

// AftercareService handles aftercare instruction content
type AftercareService struct {
	aftercareRepo repository.AftercareRepository
}

// NewAftercareService creates a new aftercare service
func NewAftercareService(aftercareRepo repository.AftercareRepository) *AftercareService {
	return &AftercareService{aftercareRepo: aftercareRepo}
}

// AftercareInput represents the create/update aftercare input
type AftercareInput struct {
	UserID      uuid.UUID
	Title       string
	Category    *string
	Body        string
	Attachments []string
	Published   bool
}

// CreateInstruction creates a new aftercare instruction
func (s *AftercareService) CreateInstruction(ctx context.Context, input *AftercareInput) (*entity.AftercareInstruction, error) {
	if input.Title == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "title", Message: "Title is required"},
		})
	}

	slug := utils.Slugify(input.Title)
	existing, err := s.aftercareRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An instruction with this title already exists")
	}

	instruction := &entity.AftercareInstruction{
		UserID:      input.UserID,
		Title:       input.Title,
		Slug:        slug,
		Category:    input.Category,
		Body:        input.Body,
		Attachments: input.Attachments,
		Published:   input.Published,
	}

	if err := s.aftercareRepo.Create(ctx, instruction); err != nil {
		return nil, err
	}
	return instruction, nil
}

// GetInstruction returns an aftercare instruction by ID
func (s *AftercareService) GetInstruction(ctx context.Context, id uuid.UUID) (*entity.AftercareInstruction, error) {
	instruction, err := s.aftercareRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if instruction == nil {
		return nil, apperror.NewNotFoundError("Aftercare instruction")
	}
	return instruction, nil
}

// ListInstructions returns aftercare instructions with filtering and pagination
func (s *AftercareService) ListInstructions(ctx context.Context, params *repository.ContentFilterParams) ([]entity.AftercareInstruction, int64, error) {
	return s.aftercareRepo.List(ctx, params)
}

// UpdateInstruction updates an aftercare instruction
func (s *AftercareService) UpdateInstruction(ctx context.Context, id uuid.UUID, input *AftercareInput) (*entity.AftercareInstruction, error) {
	instruction, err := s.aftercareRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if instruction == nil {
		return nil, apperror.NewNotFoundError("Aftercare instruction")
	}

	if input.Title == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "title", Message: "Title is required"},
		})
	}

	if input.Title != instruction.Title {
		slug := utils.Slugify(input.Title)
		existing, err := s.aftercareRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != instruction.ID {
			return nil, apperror.NewConflictError("An instruction with this title already exists")
		}
		instruction.Slug = slug
	}

	instruction.Title = input.Title
	instruction.Category = input.Category
	instruction.Body = input.Body
	instruction.Attachments = input.Attachments
	instruction.Published = input.Published

	if err := s.aftercareRepo.Update(ctx, instruction); err != nil {
		return nil, err
	}
	return instruction, nil
}

// DeleteInstruction soft deletes an aftercare instruction
func (s *AftercareService) DeleteInstruction(ctx context.Context, id uuid.UUID) error {
	instruction, err := s.aftercareRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if instruction == nil {
		return apperror.NewNotFoundError("Aftercare instruction")
	}
	return s.aftercareRepo.Delete(ctx, id)
}
