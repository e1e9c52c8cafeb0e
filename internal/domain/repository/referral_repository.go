package repository

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/google/uuid"
)

// ReferralFilterParams contains filtering parameters for referral queries
type ReferralFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ReferralStatus
	Source     *string
}

// ReferralRepository defines the interface for referral data operations
type ReferralRepository interface {
	Create(ctx context.Context, referral *entity.Referral) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Referral, error)
	Update(ctx context.Context, referral *entity.Referral) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ReferralFilterParams) ([]entity.Referral, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReferralStatus) error
	CountByStatus(ctx context.Context, status enum.ReferralStatus) (int64, error)
}
