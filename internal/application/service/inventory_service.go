package service

import (
	"context"
	"time"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryService handles consumable usage tracking
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	locationRepo  repository.LocationRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	locationRepo repository.LocationRepository,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		locationRepo:  locationRepo,
	}
}

// InventoryUsageInput represents the create/update usage input
type InventoryUsageInput struct {
	UserID       uuid.UUID
	LocationID   *uuid.UUID
	ItemName     string
	QuantityUsed decimal.Decimal
	Unit         string
	UsedOn       time.Time
	Notes        *string
}

func (s *InventoryService) validateUsageInput(ctx context.Context, input *InventoryUsageInput) error {
	var fieldErrors []apperror.FieldError
	if input.ItemName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "item_name", Message: "Item name is required",
		})
	}
	if !input.QuantityUsed.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "quantity_used", Message: "Quantity must be positive",
		})
	}
	if input.UsedOn.IsZero() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "used_on", Message: "Usage date is required",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}

	if input.LocationID != nil {
		location, err := s.locationRepo.GetByID(ctx, *input.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return apperror.NewNotFoundError("Location")
		}
	}
	return nil
}

// RecordUsage creates a new usage record
func (s *InventoryService) RecordUsage(ctx context.Context, input *InventoryUsageInput) (*entity.InventoryUsage, error) {
	if err := s.validateUsageInput(ctx, input); err != nil {
		return nil, err
	}

	usage := &entity.InventoryUsage{
		UserID:       input.UserID,
		LocationID:   input.LocationID,
		ItemName:     input.ItemName,
		QuantityUsed: input.QuantityUsed,
		Unit:         input.Unit,
		UsedOn:       input.UsedOn,
		Notes:        input.Notes,
	}

	if err := s.inventoryRepo.Create(ctx, usage); err != nil {
		return nil, err
	}
	return usage, nil
}

// GetUsage returns a usage record by ID
func (s *InventoryService) GetUsage(ctx context.Context, id uuid.UUID) (*entity.InventoryUsage, error) {
	usage, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		return nil, apperror.NewNotFoundError("Usage record")
	}
	return usage, nil
}

// ListUsage returns usage records with filtering and pagination
func (s *InventoryService) ListUsage(ctx context.Context, params *repository.InventoryFilterParams) ([]entity.InventoryUsage, int64, error) {
	return s.inventoryRepo.List(ctx, params)
}

// UpdateUsage updates a usage record
func (s *InventoryService) UpdateUsage(ctx context.Context, id uuid.UUID, input *InventoryUsageInput) (*entity.InventoryUsage, error) {
	usage, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		return nil, apperror.NewNotFoundError("Usage record")
	}

	if err := s.validateUsageInput(ctx, input); err != nil {
		return nil, err
	}

	usage.LocationID = input.LocationID
	usage.ItemName = input.ItemName
	usage.QuantityUsed = input.QuantityUsed
	usage.Unit = input.Unit
	usage.UsedOn = input.UsedOn
	usage.Notes = input.Notes

	if err := s.inventoryRepo.Update(ctx, usage); err != nil {
		return nil, err
	}
	return usage, nil
}

// DeleteUsage soft deletes a usage record
func (s *InventoryService) DeleteUsage(ctx context.Context, id uuid.UUID) error {
	usage, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if usage == nil {
		return apperror.NewNotFoundError("Usage record")
	}
	return s.inventoryRepo.Delete(ctx, id)
}
