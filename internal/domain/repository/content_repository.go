package repository

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/google/uuid"
)

// ContentFilterParams contains filtering parameters shared by the content
// library screens (aftercare, consent forms, education topics).
type ContentFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Category      *string
	PublishedOnly bool
}

// AftercareRepository defines the interface for aftercare instruction operations
type AftercareRepository interface {
	Create(ctx context.Context, instruction *entity.AftercareInstruction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AftercareInstruction, error)
	GetBySlug(ctx context.Context, slug string) (*entity.AftercareInstruction, error)
	Update(ctx context.Context, instruction *entity.AftercareInstruction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ContentFilterParams) ([]entity.AftercareInstruction, int64, error)
}

// ConsentFormRepository defines the interface for consent form operations
type ConsentFormRepository interface {
	Create(ctx context.Context, form *entity.ConsentForm) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ConsentForm, error)
	GetBySlug(ctx context.Context, slug string) (*entity.ConsentForm, error)
	Update(ctx context.Context, form *entity.ConsentForm) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ContentFilterParams) ([]entity.ConsentForm, int64, error)
}

// EducationTopicRepository defines the interface for education topic operations
type EducationTopicRepository interface {
	Create(ctx context.Context, topic *entity.EducationTopic) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EducationTopic, error)
	GetBySlug(ctx context.Context, slug string) (*entity.EducationTopic, error)
	Update(ctx context.Context, topic *entity.EducationTopic) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ContentFilterParams) ([]entity.EducationTopic, int64, error)
}
