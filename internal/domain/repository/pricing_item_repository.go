package repository

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/google/uuid"
)

// PricingItemFilterParams contains filtering parameters for catalog queries
type PricingItemFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   *string
	ActiveOnly bool
}

// PricingItemRepository defines the interface for pricing catalog operations
type PricingItemRepository interface {
	Create(ctx context.Context, item *entity.PricingItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PricingItem, error)
	GetBySlug(ctx context.Context, slug string) (*entity.PricingItem, error)
	Update(ctx context.Context, item *entity.PricingItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PricingItemFilterParams) ([]entity.PricingItem, int64, error)
	ListCategories(ctx context.Context) ([]string, error)
	ReplaceTiers(ctx context.Context, itemID uuid.UUID, tiers []entity.PricingTier) error
}
