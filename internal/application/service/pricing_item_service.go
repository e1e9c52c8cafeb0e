package service

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/chc-hub/api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingItemService handles the treatment pricing catalog
type PricingItemService struct {
	itemRepo repository.PricingItemRepository
}

// NewPricingItemService creates a new pricing catalog service
func NewPricingItemService(itemRepo repository.PricingItemRepository) *PricingItemService {
	return &PricingItemService{itemRepo: itemRepo}
}

// TierInput represents one price point of a catalog item
type TierInput struct {
	Name     string
	Price    decimal.Decimal
	Sessions int
}

// PricingItemInput represents the create/update catalog item input
type PricingItemInput struct {
	Name        string
	Category    *string
	Description *string
	Taxable     bool
	ImageURL    *string
	Active      bool
	Tiers       []TierInput
}

func validatePricingItemInput(input *PricingItemInput) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	for _, tier := range input.Tiers {
		if tier.Name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: "tiers", Message: "Every tier needs a name",
			})
			break
		}
	}
	for _, tier := range input.Tiers {
		if tier.Price.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: "tiers", Message: "Tier prices cannot be negative",
			})
			break
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func buildTiers(inputs []TierInput) []entity.PricingTier {
	tiers := make([]entity.PricingTier, 0, len(inputs))
	for i, in := range inputs {
		sessions := in.Sessions
		if sessions < 1 {
			sessions = 1
		}
		tiers = append(tiers, entity.PricingTier{
			Name:      in.Name,
			Price:     in.Price,
			Sessions:  sessions,
			SortOrder: i,
		})
	}
	return tiers
}

// CreatePricingItem creates a new catalog item with its tiers
func (s *PricingItemService) CreatePricingItem(ctx context.Context, input *PricingItemInput) (*entity.PricingItem, error) {
	if err := validatePricingItemInput(input); err != nil {
		return nil, err
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.itemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A pricing item with this name already exists")
	}

	item := &entity.PricingItem{
		Name:        input.Name,
		Slug:        slug,
		Category:    input.Category,
		Description: input.Description,
		Taxable:     input.Taxable,
		ImageURL:    input.ImageURL,
		Active:      input.Active,
		Tiers:       buildTiers(input.Tiers),
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.itemRepo.GetByID(ctx, item.ID)
}

// GetPricingItem returns a catalog item with its tiers
func (s *PricingItemService) GetPricingItem(ctx context.Context, id uuid.UUID) (*entity.PricingItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Pricing item")
	}
	return item, nil
}

// ListPricingItemsOutput represents the paginated catalog output
type ListPricingItemsOutput struct {
	Items      []entity.PricingItem
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// ListPricingItems returns the catalog with filtering and pagination
func (s *PricingItemService) ListPricingItems(ctx context.Context, params *repository.PricingItemFilterParams) (*ListPricingItemsOutput, error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := params.Pagination
	totalPages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))

	return &ListPricingItemsOutput{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: totalPages,
	}, nil
}

// ListCategories returns the distinct catalog categories
func (s *PricingItemService) ListCategories(ctx context.Context) ([]string, error) {
	return s.itemRepo.ListCategories(ctx)
}

// UpdatePricingItem updates a catalog item and replaces its tier set.
// Quotes hold copied line items, so catalog edits never alter saved quotes.
func (s *PricingItemService) UpdatePricingItem(ctx context.Context, id uuid.UUID, input *PricingItemInput) (*entity.PricingItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Pricing item")
	}

	if err := validatePricingItemInput(input); err != nil {
		return nil, err
	}

	if input.Name != item.Name {
		slug := utils.Slugify(input.Name)
		existing, err := s.itemRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != item.ID {
			return nil, apperror.NewConflictError("A pricing item with this name already exists")
		}
		item.Slug = slug
	}

	item.Name = input.Name
	item.Category = input.Category
	item.Description = input.Description
	item.Taxable = input.Taxable
	item.ImageURL = input.ImageURL
	item.Active = input.Active
	item.Tiers = nil

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	if err := s.itemRepo.ReplaceTiers(ctx, item.ID, buildTiers(input.Tiers)); err != nil {
		return nil, err
	}

	return s.itemRepo.GetByID(ctx, item.ID)
}

// DeletePricingItem soft deletes a catalog item
func (s *PricingItemService) DeletePricingItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Pricing item")
	}
	return s.itemRepo.Delete(ctx, id)
}
