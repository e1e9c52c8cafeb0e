package service

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/chc-hub/api/pkg/utils"
	"github.com/google/uuid"
)

// ConsentFormService handles consent form documents
type ConsentFormService struct {
	formRepo repository.ConsentFormRepository
}

// NewConsentFormService creates a new consent form service
func NewConsentFormService(formRepo repository.ConsentFormRepository) *ConsentFormService {
	return &ConsentFormService{formRepo: formRepo}
}

// ConsentFormInput represents the create/update consent form input
type ConsentFormInput struct {
	UserID            uuid.UUID
	Title             string
	Body              string
	RequiresSignature bool
	Active            bool
}

// CreateForm creates a new consent form at version 1
func (s *ConsentFormService) CreateForm(ctx context.Context, input *ConsentFormInput) (*entity.ConsentForm, error) {
	if input.Title == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "title", Message: "Title is required"},
		})
	}

	slug := utils.Slugify(input.Title)
	existing, err := s.formRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A consent form with this title already exists")
	}

	form := &entity.ConsentForm{
		UserID:            input.UserID,
		Title:             input.Title,
		Slug:              slug,
		Body:              input.Body,
		Version:           1,
		RequiresSignature: input.RequiresSignature,
		Active:            input.Active,
	}

	if err := s.formRepo.Create(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// GetForm returns a consent form by ID
func (s *ConsentFormService) GetForm(ctx context.Context, id uuid.UUID) (*entity.ConsentForm, error) {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, apperror.NewNotFoundError("Consent form")
	}
	return form, nil
}

// ListForms returns consent forms with filtering and pagination
func (s *ConsentFormService) ListForms(ctx context.Context, params *repository.ContentFilterParams) ([]entity.ConsentForm, int64, error) {
	return s.formRepo.List(ctx, params)
}

// UpdateForm updates a consent form. Editing the body bumps the version so
// previously signed copies stay attributable to the text the patient saw.
func (s *ConsentFormService) UpdateForm(ctx context.Context, id uuid.UUID, input *ConsentFormInput) (*entity.ConsentForm, error) {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, apperror.NewNotFoundError("Consent form")
	}

	if input.Title == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "title", Message: "Title is required"},
		})
	}

	if input.Title != form.Title {
		slug := utils.Slugify(input.Title)
		existing, err := s.formRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != form.ID {
			return nil, apperror.NewConflictError("A consent form with this title already exists")
		}
		form.Slug = slug
	}

	if input.Body != form.Body {
		form.Version++
	}

	form.Title = input.Title
	form.Body = input.Body
	form.RequiresSignature = input.RequiresSignature
	form.Active = input.Active

	if err := s.formRepo.Update(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// DeleteForm soft deletes a consent form
func (s *ConsentFormService) DeleteForm(ctx context.Context, id uuid.UUID) error {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if form == nil {
		return apperror.NewNotFoundError("Consent form")
	}
	return s.formRepo.Delete(ctx, id)
}
