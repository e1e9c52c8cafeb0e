package service

import (
	"context"
	"time"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountService handles promotion management
type DiscountService struct {
	discountRepo repository.DiscountRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(discountRepo repository.DiscountRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

// DiscountInput represents the create/update discount input
type DiscountInput struct {
	Name          string
	Description   *string
	DiscountType  enum.DiscountType
	DiscountValue decimal.Decimal
	Active        bool
	ValidUntil    *time.Time
}

func validateDiscountInput(input *DiscountInput) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	if input.DiscountValue.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "discount_value", Message: "Discount value cannot be negative",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateDiscount creates a new discount
func (s *DiscountService) CreateDiscount(ctx context.Context, input *DiscountInput) (*entity.Discount, error) {
	if err := validateDiscountInput(input); err != nil {
		return nil, err
	}

	discount := &entity.Discount{
		Name:          input.Name,
		Description:   input.Description,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		Active:        input.Active,
		ValidUntil:    input.ValidUntil,
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// GetDiscount returns a discount by ID
func (s *DiscountService) GetDiscount(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}
	return discount, nil
}

// ListDiscounts returns all discounts, optionally only those currently
// selectable on a quote
func (s *DiscountService) ListDiscounts(ctx context.Context, activeOnly bool) ([]entity.Discount, error) {
	return s.discountRepo.List(ctx, activeOnly)
}

// UpdateDiscount updates a discount. Quotes that already reference it keep
// their frozen snapshots; only future pricing sees the change.
func (s *DiscountService) UpdateDiscount(ctx context.Context, id uuid.UUID, input *DiscountInput) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}

	if err := validateDiscountInput(input); err != nil {
		return nil, err
	}

	discount.Name = input.Name
	discount.Description = input.Description
	discount.DiscountType = input.DiscountType
	discount.DiscountValue = input.DiscountValue
	discount.Active = input.Active
	discount.ValidUntil = input.ValidUntil

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// DeleteDiscount soft deletes a discount
func (s *DiscountService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if discount == nil {
		return apperror.NewNotFoundError("Discount")
	}
	return s.discountRepo.Delete(ctx, id)
}
