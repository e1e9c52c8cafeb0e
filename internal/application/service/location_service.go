package service

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LocationService handles clinic location management
type LocationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo repository.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

// LocationInput represents the create/update location input
type LocationInput struct {
	Name    string
	Address *string
	City    *string
	State   *string
	Zip     *string
	Phone   *string
	TaxRate decimal.Decimal
	Active  bool
}

func validateLocationInput(input *LocationInput) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	if input.TaxRate.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "tax_rate", Message: "Tax rate cannot be negative",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateLocation creates a new clinic location
func (s *LocationService) CreateLocation(ctx context.Context, input *LocationInput) (*entity.ClinicLocation, error) {
	if err := validateLocationInput(input); err != nil {
		return nil, err
	}

	location := &entity.ClinicLocation{
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Zip:     input.Zip,
		Phone:   input.Phone,
		TaxRate: input.TaxRate,
		Active:  input.Active,
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetLocation returns a location by ID
func (s *LocationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.ClinicLocation, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, apperror.NewNotFoundError("Location")
	}
	return location, nil
}

// ListLocations returns all locations, optionally active only
func (s *LocationService) ListLocations(ctx context.Context, activeOnly bool) ([]entity.ClinicLocation, error) {
	return s.locationRepo.List(ctx, activeOnly)
}

// UpdateLocation updates a clinic location. Changing the tax rate affects
// future pricing only; existing quote snapshots are never touched.
func (s *LocationService) UpdateLocation(ctx context.Context, id uuid.UUID, input *LocationInput) (*entity.ClinicLocation, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, apperror.NewNotFoundError("Location")
	}

	if err := validateLocationInput(input); err != nil {
		return nil, err
	}

	location.Name = input.Name
	location.Address = input.Address
	location.City = input.City
	location.State = input.State
	location.Zip = input.Zip
	location.Phone = input.Phone
	location.TaxRate = input.TaxRate
	location.Active = input.Active

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// DeleteLocation soft deletes a clinic location
func (s *LocationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if location == nil {
		return apperror.NewNotFoundError("Location")
	}
	return s.locationRepo.Delete(ctx, id)
}
