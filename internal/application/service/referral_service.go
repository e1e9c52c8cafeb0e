package service

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/google/uuid"
)

// ReferralService handles patient referral tracking
type ReferralService struct {
	referralRepo repository.ReferralRepository
}

// NewReferralService creates a new referral service
func NewReferralService(referralRepo repository.ReferralRepository) *ReferralService {
	return &ReferralService{referralRepo: referralRepo}
}

// ReferralInput represents the create/update referral input
type ReferralInput struct {
	UserID      uuid.UUID
	PatientName string
	Email       *string
	Phone       *string
	Source      *string
	Notes       *string
}

// CreateReferral records a new inbound referral
func (s *ReferralService) CreateReferral(ctx context.Context, input *ReferralInput) (*entity.Referral, error) {
	if input.PatientName == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "patient_name", Message: "Patient name is required"},
		})
	}

	referral := &entity.Referral{
		UserID:      input.UserID,
		PatientName: input.PatientName,
		Email:       input.Email,
		Phone:       input.Phone,
		Source:      input.Source,
		Status:      enum.ReferralStatusPending,
		Notes:       input.Notes,
	}

	if err := s.referralRepo.Create(ctx, referral); err != nil {
		return nil, err
	}
	return referral, nil
}

// GetReferral returns a referral by ID
func (s *ReferralService) GetReferral(ctx context.Context, id uuid.UUID) (*entity.Referral, error) {
	referral, err := s.referralRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return nil, apperror.NewNotFoundError("Referral")
	}
	return referral, nil
}

// ListReferrals returns referrals with filtering and pagination
func (s *ReferralService) ListReferrals(ctx context.Context, params *repository.ReferralFilterParams) ([]entity.Referral, int64, error) {
	return s.referralRepo.List(ctx, params)
}

// UpdateReferral updates a referral's contact details and notes
func (s *ReferralService) UpdateReferral(ctx context.Context, id uuid.UUID, input *ReferralInput) (*entity.Referral, error) {
	referral, err := s.referralRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return nil, apperror.NewNotFoundError("Referral")
	}

	if input.PatientName == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "patient_name", Message: "Patient name is required"},
		})
	}

	referral.PatientName = input.PatientName
	referral.Email = input.Email
	referral.Phone = input.Phone
	referral.Source = input.Source
	referral.Notes = input.Notes

	if err := s.referralRepo.Update(ctx, referral); err != nil {
		return nil, err
	}
	return referral, nil
}

// UpdateReferralStatus moves a referral through follow-up
func (s *ReferralService) UpdateReferralStatus(ctx context.Context, id uuid.UUID, status enum.ReferralStatus) (*entity.Referral, error) {
	referral, err := s.referralRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return nil, apperror.NewNotFoundError("Referral")
	}

	if err := s.referralRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	referral.Status = status
	return referral, nil
}

// DeleteReferral soft deletes a referral
func (s *ReferralService) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	referral, err := s.referralRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if referral == nil {
		return apperror.NewNotFoundError("Referral")
	}
	return s.referralRepo.Delete(ctx, id)
}
