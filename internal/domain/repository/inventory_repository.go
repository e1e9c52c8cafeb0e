package repository

import (
	"context"
	"time"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/google/uuid"
)

// InventoryFilterParams contains filtering parameters for usage queries
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	LocationID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// InventoryRepository defines the interface for inventory usage operations
type InventoryRepository interface {
	Create(ctx context.Context, usage *entity.InventoryUsage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryUsage, error)
	Update(ctx context.Context, usage *entity.InventoryUsage) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryUsage, int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
