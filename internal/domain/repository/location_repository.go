package repository

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/google/uuid"
)

// LocationRepository defines the interface for clinic location data operations
type LocationRepository interface {
	Create(ctx context.Context, location *entity.ClinicLocation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ClinicLocation, error)
	Update(ctx context.Context, location *entity.ClinicLocation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.ClinicLocation, error)
}
