package repository

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/google/uuid"
)

// QuoteFilterParams contains filtering parameters for quote queries
type QuoteFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuoteStatus
	LocationID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	GetByReference(ctx context.Context, reference string) (*entity.Quote, error)
	GetWithLineItems(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *QuoteFilterParams) ([]entity.Quote, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status enum.QuoteStatus) (int64, error)
	SumTotalByStatus(ctx context.Context, status enum.QuoteStatus) (float64, error)
}

// QuoteLineItemRepository defines the interface for quote line item operations
type QuoteLineItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.QuoteLineItem) error
	GetByQuoteID(ctx context.Context, quoteID uuid.UUID) ([]entity.QuoteLineItem, error)
	DeleteByQuoteID(ctx context.Context, quoteID uuid.UUID) error
}
